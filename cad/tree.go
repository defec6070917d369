package cad

import "github.com/real-cad/cad/ralg"

// node is one entry of the sample tree. The root carries no value;
// every other node carries one component of a partial sample point.
// Children are kept sorted by real-algebraic less-than.
type node struct {
	value    ralg.Number
	hasValue bool
	isRoot   bool
	children []*node
}

func newRoot() *node { return &node{} }

// findOrInsertChild locates the child equal to v, inserting a new child
// in sorted position if none matches.
func (n *node) findOrInsertChild(v ralg.Number) (*node, error) {
	pos := 0
	for pos < len(n.children) {
		c := n.children[pos]
		eq, err := c.value.Equal(v)
		if err != nil {
			return nil, err
		}
		if eq {
			c.value = v // may carry a more refined representation
			return c, nil
		}
		less, err := v.Less(c.value)
		if err != nil {
			return nil, err
		}
		if less {
			break
		}
		pos++
	}
	child := &node{value: v, hasValue: true}
	n.children = append(n.children, nil)
	copy(n.children[pos+1:], n.children[pos:])
	n.children[pos] = child
	return child, nil
}

// leaves appends every leaf under n to out as a Point. ancestors holds
// the values from the root down to n, exclusive; the root-to-leaf
// sequence is reversed so the deepest node becomes the first
// coordinate.
func (n *node) leaves(ancestors []ralg.Number, out *[]Point) {
	if len(n.children) == 0 {
		if !n.hasValue {
			*out = append(*out, Point{})
			return
		}
		seq := append(append([]ralg.Number(nil), ancestors...), n.value)
		reversed := make([]ralg.Number, len(seq))
		for i, v := range seq {
			reversed[len(seq)-1-i] = v
		}
		*out = append(*out, Point{components: reversed})
		return
	}
	next := ancestors
	if n.hasValue {
		next = append(append([]ralg.Number(nil), ancestors...), n.value)
	}
	for _, c := range n.children {
		c.leaves(next, out)
	}
}
