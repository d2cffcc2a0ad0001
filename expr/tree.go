// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package expr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// node is one arena slot. Children are stored in pre-order: the first
// child of node i is always i+1, the second child of a binary node is at
// right.
type node struct {
	kind  Kind
	value float32
	right int32
}

// Tree is an immutable expression tree.
//
// Nodes live in a flat slice in pre-order, so a tree has no pointers between
// nodes and can be shared between goroutines freely. Trees are built by
// [Generate] or by the constructor functions in this package; the zero Tree
// holds no root and must not be evaluated.
type Tree struct {
	nodes []node
}

// Node is a read-only view of one node in a Tree.
type Node struct {
	t *Tree
	i int32
}

// Root returns the root node.
func (t *Tree) Root() Node { return Node{t: t, i: 0} }

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Kind returns the node kind.
func (n Node) Kind() Kind { return n.t.nodes[n.i].kind }

// Value returns the literal of a Random node and 0 for every other kind.
func (n Node) Value() float32 { return n.t.nodes[n.i].value }

// Child returns the operand of a unary node, or the left operand of a
// binary node.
func (n Node) Child() Node {
	if n.Kind().IsTerminal() {
		panic(fmt.Sprintf("expr: %s node has no children", n.Kind()))
	}
	return Node{t: n.t, i: n.i + 1}
}

// Left returns the left operand of a binary node.
func (n Node) Left() Node {
	if n.Kind().Arity() != 2 {
		panic(fmt.Sprintf("expr: %s node is not binary", n.Kind()))
	}
	return Node{t: n.t, i: n.i + 1}
}

// Right returns the right operand of a binary node.
func (n Node) Right() Node {
	if n.Kind().Arity() != 2 {
		panic(fmt.Sprintf("expr: %s node is not binary", n.Kind()))
	}
	return Node{t: n.t, i: n.t.nodes[n.i].right}
}

// Constructors. Each returns a new tree and never aliases its operands.

// X returns the tree "x".
func X() *Tree { return leaf(KindX, 0) }

// Y returns the tree "y".
func Y() *Tree { return leaf(KindY, 0) }

// Time returns the tree "sin(time)".
func Time() *Tree { return leaf(KindTime, 0) }

// Random returns a literal tree holding v.
func Random(v float32) *Tree { return leaf(KindRandom, v) }

// Sqrt returns sqrt(abs(a)).
func Sqrt(a *Tree) *Tree { return unary(KindSqrt, a) }

// Abs returns abs(a).
func Abs(a *Tree) *Tree { return unary(KindAbs, a) }

// Sin returns sin(a).
func Sin(a *Tree) *Tree { return unary(KindSin, a) }

// Add returns a + b.
func Add(a, b *Tree) *Tree { return binary(KindAdd, a, b) }

// Mult returns a * b.
func Mult(a, b *Tree) *Tree { return binary(KindMult, a, b) }

// Mod returns the truncated remainder of a / b.
func Mod(a, b *Tree) *Tree { return binary(KindMod, a, b) }

// Gt returns 1 when a > b and 0 otherwise.
func Gt(a, b *Tree) *Tree { return binary(KindGt, a, b) }

func leaf(k Kind, v float32) *Tree {
	return &Tree{nodes: []node{{kind: k, value: v}}}
}

func unary(k Kind, a *Tree) *Tree {
	nodes := make([]node, 0, 1+len(a.nodes))
	nodes = append(nodes, node{kind: k})
	nodes = appendShifted(nodes, a.nodes, 1)
	return &Tree{nodes: nodes}
}

func binary(k Kind, a, b *Tree) *Tree {
	right := int32(1 + len(a.nodes))
	nodes := make([]node, 0, 1+len(a.nodes)+len(b.nodes))
	nodes = append(nodes, node{kind: k, right: right})
	nodes = appendShifted(nodes, a.nodes, 1)
	nodes = appendShifted(nodes, b.nodes, right)
	return &Tree{nodes: nodes}
}

// appendShifted copies src into dst, rebasing right-child indices by off.
func appendShifted(dst, src []node, off int32) []node {
	for _, n := range src {
		if n.kind.Arity() == 2 {
			n.right += off
		}
		dst = append(dst, n)
	}
	return dst
}

// Depth returns the number of edges on the longest root-to-leaf path.
// A single terminal has depth 0.
func (t *Tree) Depth() int {
	if len(t.nodes) == 0 {
		return 0
	}
	return t.depth(0)
}

func (t *Tree) depth(i int32) int {
	n := &t.nodes[i]
	switch n.kind.Arity() {
	case 1:
		return 1 + t.depth(i+1)
	case 2:
		return 1 + max(t.depth(i+1), t.depth(n.right))
	default:
		return 0
	}
}

// Histogram returns the number of nodes of each kind.
func (t *Tree) Histogram() [NumKinds]int {
	var h [NumKinds]int
	for _, n := range t.nodes {
		h[n.kind]++
	}
	return h
}

// Equal reports whether t and u have the same shape, the same kind at every
// position and bit-identical Random literals.
func (t *Tree) Equal(u *Tree) bool {
	if t == nil || u == nil {
		return t == u
	}
	if len(t.nodes) != len(u.nodes) {
		return false
	}
	for i := range t.nodes {
		a, b := t.nodes[i], u.nodes[i]
		if a.kind != b.kind || a.right != b.right {
			return false
		}
		if math.Float32bits(a.value) != math.Float32bits(b.value) {
			return false
		}
	}
	return true
}

// String returns a debug rendering such as "Add(X, Random(0.25))".
func (t *Tree) String() string {
	if len(t.nodes) == 0 {
		return "<empty>"
	}
	var sb strings.Builder
	t.format(&sb, 0)
	return sb.String()
}

func (t *Tree) format(sb *strings.Builder, i int32) {
	n := &t.nodes[i]
	sb.WriteString(n.kind.String())
	switch n.kind.Arity() {
	case 0:
		if n.kind == KindRandom {
			sb.WriteByte('(')
			sb.WriteString(strconv.FormatFloat(float64(n.value), 'g', -1, 32))
			sb.WriteByte(')')
		}
	case 1:
		sb.WriteByte('(')
		t.format(sb, i+1)
		sb.WriteByte(')')
	case 2:
		sb.WriteByte('(')
		t.format(sb, i+1)
		sb.WriteString(", ")
		t.format(sb, n.right)
		sb.WriteByte(')')
	}
}
