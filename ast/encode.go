package ast

import (
	"strings"
)

// Encode transforms a node back into its textual representation. The
// top-level list is the implicit one enclosing the whole input, so it is
// rendered without parentheses.
func Encode(n *Node) []byte {
	return encodeNodeLevel(n, 0)
}

func encodeNodeLevel(n *Node, level int) []byte {
	if n == nil {
		return nil
	}
	switch n.Type() {
	case NodeTypeList:
		nodes := []string{}
		for _, c := range n.List() {
			nodes = append(nodes, string(encodeNodeLevel(c, level+1)))
		}
		if level == 0 {
			return []byte(strings.Join(nodes, " "))
		}
		return []byte("(" + strings.Join(nodes, " ") + ")")

	case NodeTypeSymbol:
		return []byte(n.Text())

	default:
		panic("unknown node type")
	}
}
