package grid

import (
	"math/rand"
	"strings"
)

// GenerateConfig controls random world generation.
type GenerateConfig struct {
	Width    int
	Height   int
	Clusters int
	Steps    int
	Density  float64
}

// Generate returns a random layout with clustered walls grown by random
// walks. Start and finish are distinct open tiles.
func Generate(gen GenerateConfig, r *rand.Rand) Config {
	start := [2]int{r.Intn(gen.Width), r.Intn(gen.Height)}
	finish := start
	for finish == start && gen.Width*gen.Height > 1 {
		finish = [2]int{r.Intn(gen.Width), r.Intn(gen.Height)}
	}

	walls := map[[2]int]bool{}
	directions := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for c := 0; c < gen.Clusters; c++ {
		p := [2]int{r.Intn(gen.Width), r.Intn(gen.Height)}
		for s := 0; s < gen.Steps; s++ {
			if r.Float64() < gen.Density && p != start && p != finish {
				walls[p] = true
			}
			d := directions[r.Intn(len(directions))]
			np := [2]int{p[0] + d[0], p[1] + d[1]}
			if np[0] >= 0 && np[0] < gen.Width && np[1] >= 0 && np[1] < gen.Height {
				p = np
			}
		}
	}

	rows := make([]string, gen.Height)
	for y := range rows {
		var b strings.Builder
		for x := 0; x < gen.Width; x++ {
			if walls[[2]int{x, y}] {
				b.WriteByte(MarkBlocked)
			} else {
				b.WriteByte(MarkOpen)
			}
		}
		rows[y] = b.String()
	}
	return Config{Rows: rows, Start: &start, Finish: &finish}
}
