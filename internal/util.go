package internal

// Reverse reverses nodes in place and returns it.
func Reverse[NodeType any](nodes []NodeType) []NodeType {
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	return nodes
}
