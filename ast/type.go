package ast

// NodeType represents the type of an AST node
type NodeType uint8

// Node types
const (
	NodeTypeSymbol NodeType = iota // A bare token, e.g. "36-149" or "1"
	NodeTypeList                   // A parenthesized sequence of nodes
)

var nodeTypeName = map[NodeType]string{
	NodeTypeSymbol: "symbol",
	NodeTypeList:   "list",
}

func (nt NodeType) String() string {
	if s, ok := nodeTypeName[nt]; ok {
		return s
	}
	return ""
}
