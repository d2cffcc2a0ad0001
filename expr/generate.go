// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package expr

import "math/rand/v2"

// Generate grows a random tree no deeper than maxDepth.
//
// Randomness is drawn in a fixed order at every node: the state draw (skipped
// at depth 0), the variant draw, the literal draw for Random, then the first
// operand in full, then the second. The same rng state, depth and grammar
// therefore always yield the same tree.
//
// A nil grammar means DefaultGrammar(). g must pass Validate.
func Generate(maxDepth uint32, rng *rand.Rand, g *Grammar) *Tree {
	if g == nil {
		g = DefaultGrammar()
	}
	gen := generator{
		rng:             rng,
		g:               g,
		terminalWeight:  totalWeight(g.Terminals),
		compositeWeight: totalWeight(g.Composites),
	}
	gen.grow(maxDepth)
	return &Tree{nodes: gen.nodes}
}

type generator struct {
	rng             *rand.Rand
	g               *Grammar
	terminalWeight  int
	compositeWeight int
	nodes           []node
}

func (gen *generator) grow(depth uint32) {
	if depth == 0 || gen.rng.Float64() < gen.g.TerminalProb {
		k := gen.pick(gen.g.Terminals, gen.terminalWeight)
		n := node{kind: k}
		if k == KindRandom {
			n.value = gen.rng.Float32()*2 - 1
		}
		gen.nodes = append(gen.nodes, n)
		return
	}

	k := gen.pick(gen.g.Composites, gen.compositeWeight)
	self := len(gen.nodes)
	gen.nodes = append(gen.nodes, node{kind: k})
	gen.grow(depth - 1)
	if k.Arity() == 2 {
		gen.nodes[self].right = int32(len(gen.nodes))
		gen.grow(depth - 1)
	}
}

// pick draws one kind from table with probability proportional to weight.
func (gen *generator) pick(table []Weighted, total int) Kind {
	n := gen.rng.IntN(total)
	for _, w := range table {
		if n < w.Weight {
			return w.Kind
		}
		n -= w.Weight
	}
	return table[len(table)-1].Kind
}
