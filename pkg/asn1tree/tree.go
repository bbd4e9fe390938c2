package asn1tree

import (
	"errors"
	"fmt"
)

// ErrNoContent reports that a node has no content octets available, either
// because the tree was parsed with WithoutContent or because the node is
// Constructed.
var ErrNoContent = errors.New("no content octets available")

// Tree is an arena of decoded nodes. The zero value is not usable; obtain a
// Tree from ParseBytes, Parse or NewTree.
type Tree struct {
	nodes []*Node
	roots []NodeID
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// Len returns the total number of nodes in the arena.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Roots returns the IDs of the top-level values, in stream order.
func (t *Tree) Roots() []NodeID {
	return t.roots
}

// Node returns the node addressed by id, or nil if id is out of range.
func (t *Tree) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// Children returns the ordered child list of a node. The returned slice is
// owned by the tree and must not be modified by the caller.
func (t *Tree) Children(id NodeID) []NodeID {
	n := t.Node(id)
	if n == nil {
		return nil
	}
	return n.children
}

// Graft merges the nodes of sub into this tree and appends sub's top-level
// values, in order, as new children of parent. It returns the number of
// children added. Grafting into an unknown parent is a no-op.
func (t *Tree) Graft(parent NodeID, sub *Tree) int {
	p := t.Node(parent)
	if p == nil || sub == nil {
		return 0
	}

	base := NodeID(len(t.nodes))
	for _, n := range sub.nodes {
		moved := *n
		moved.children = make([]NodeID, len(n.children))
		for i, c := range n.children {
			moved.children[i] = c + base
		}
		t.nodes = append(t.nodes, &moved)
	}

	for _, r := range sub.roots {
		p.children = append(p.children, r+base)
	}

	return len(sub.roots)
}

// BitStringContent returns the content bytes of a BIT STRING node with its
// leading unused-bits octet stripped. The unused-bit count must be 0 to 7;
// anything else means the value is not a well-formed BIT STRING.
func (t *Tree) BitStringContent(id NodeID) ([]byte, error) {
	n := t.Node(id)
	if n == nil {
		return nil, fmt.Errorf("node %d out of range", id)
	}
	if n.Class != ClassUniversal || n.Tag != TagBitString || n.Kind != Primitive {
		return nil, fmt.Errorf("node %d is not a primitive BIT STRING", id)
	}
	if n.Raw == nil {
		return nil, ErrNoContent
	}
	if len(n.Raw) == 0 {
		return nil, fmt.Errorf("node %d: BIT STRING missing unused-bits octet", id)
	}
	if n.Raw[0] > 7 {
		return nil, fmt.Errorf("node %d: invalid unused-bit count %d", id, n.Raw[0])
	}
	return n.Raw[1:], nil
}

// add appends a node to the arena and returns its ID.
func (t *Tree) add(n *Node) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	return id
}
