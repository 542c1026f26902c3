package ast

import (
	"errors"
	"fmt"

	"github.com/xiam/binspec/lexer"
)

// Node represents a leaf or a branch of the AST
type Node struct {
	p *Node

	nt       NodeType
	tok      *lexer.Token
	text     string
	children []*Node
}

// NewSymbol creates and returns an orphaned symbol node holding the text of
// the given token
func NewSymbol(tok *lexer.Token, text string) *Node {
	return &Node{
		nt:   NodeTypeSymbol,
		tok:  tok,
		text: text,
	}
}

// NewList creates and returns a node of type "list"
func NewList(tok *lexer.Token) *Node {
	return &Node{
		nt:       NodeTypeList,
		tok:      tok,
		children: []*Node{},
	}
}

// Push appends a child node to a node of type "list".
func (n *Node) Push(node *Node) error {
	if !n.IsList() {
		return errors.New("nodes of type symbol can't accept children")
	}
	n.children = append(n.children, node)
	node.p = n
	return nil
}

// PushList appends a new list to the node
func (n *Node) PushList(tok *lexer.Token) (*Node, error) {
	node := NewList(tok)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// PushSymbol appends a new symbol to the node
func (n *Node) PushSymbol(tok *lexer.Token, text string) (*Node, error) {
	node := NewSymbol(tok, text)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// Token returns the token associated to the node
func (n Node) Token() *lexer.Token {
	return n.tok
}

// Type returns the type of the node
func (n Node) Type() NodeType {
	return n.nt
}

// Text returns the raw text of a symbol node
func (n Node) Text() string {
	return n.text
}

// List returns all the children elements of the node
func (n *Node) List() []*Node {
	return n.children
}

// IsList returns true if the node is of type list
func (n *Node) IsList() bool {
	return n.nt == NodeTypeList
}

// IsSymbol returns true if the node is of type symbol
func (n *Node) IsSymbol() bool {
	return n.nt == NodeTypeSymbol
}

// Parent returns the node this node was pushed to
func (n *Node) Parent() *Node {
	return n.p
}

func (n Node) String() string {
	if n.nt == NodeTypeList {
		return fmt.Sprintf("(%v)[%d]", nodeTypeName[n.nt], len(n.children))
	}
	return fmt.Sprintf("(%v): %v", nodeTypeName[n.nt], n.text)
}
