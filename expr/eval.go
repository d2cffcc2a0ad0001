// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package expr

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Eval computes the channel value of the tree at (x, y) and time t.
//
// Eval is pure: it reads the tree, allocates nothing and may run
// concurrently with any other Eval on the same tree. NaN and ±Inf are
// returned as computed; see the package documentation for per-kind
// semantics.
func (t *Tree) Eval(x, y, time float32) float32 {
	return t.eval(0, x, y, time)
}

// Eval evaluates the subtree rooted at n.
func (n Node) Eval(x, y, time float32) float32 {
	return n.t.eval(n.i, x, y, time)
}

// eval must stay in lock-step with appendWGSL in emit.go.
func (t *Tree) eval(i int32, x, y, time float32) float32 {
	n := &t.nodes[i]
	switch n.kind {
	case KindX:
		return x
	case KindY:
		return y
	case KindTime:
		return math32.Sin(time)
	case KindRandom:
		return n.value

	case KindSqrt:
		return math32.Sqrt(math32.Abs(t.eval(i+1, x, y, time)))
	case KindAbs:
		return math32.Abs(t.eval(i+1, x, y, time))
	case KindSin:
		return math32.Sin(t.eval(i+1, x, y, time))

	case KindAdd:
		l := t.eval(i+1, x, y, time)
		r := t.eval(n.right, x, y, time)
		return l + r
	case KindMult:
		l := t.eval(i+1, x, y, time)
		r := t.eval(n.right, x, y, time)
		return l * r
	case KindMod:
		l := t.eval(i+1, x, y, time)
		r := t.eval(n.right, x, y, time)
		return math32.Mod(l, r)
	case KindGt:
		l := t.eval(i+1, x, y, time)
		r := t.eval(n.right, x, y, time)
		if l > r {
			return 1
		}
		return 0

	default:
		panic(fmt.Sprintf("expr: eval: unhandled kind %d", n.kind))
	}
}
