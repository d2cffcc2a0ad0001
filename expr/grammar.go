// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package expr

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// DefaultTerminalProb is the probability of emitting a leaf at depth > 0.
const DefaultTerminalProb = 0.25

// pcgStream is the fixed PCG increment paired with the seed in NewRand.
// Changing it changes every generated image.
const pcgStream = 0x9e3779b97f4a7c15

// NewRand returns the generator stream used for a seed. PCG output is fully
// specified by math/rand/v2, so the stream is identical on every platform.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, pcgStream))
}

// Weighted is one entry of a grammar variant table.
type Weighted struct {
	Kind   Kind
	Weight int
}

// Grammar controls the shape of generated trees.
//
// A grammar has two states. In the terminal state a leaf kind is drawn from
// Terminals; in the composite state an operator kind is drawn from
// Composites and each operand is grown one level deeper. Depth 0 always
// uses the terminal state; above that the terminal state is chosen with
// probability TerminalProb.
type Grammar struct {
	TerminalProb float64
	Terminals    []Weighted
	Composites   []Weighted
}

// GrammarOption configures a Grammar.
type GrammarOption func(*Grammar)

// WithTerminalProb sets the probability of stopping early with a leaf.
func WithTerminalProb(p float64) GrammarOption {
	return func(g *Grammar) {
		g.TerminalProb = p
	}
}

// WithTime adds or removes the Time terminal.
func WithTime(enabled bool) GrammarOption {
	return func(g *Grammar) {
		g.Terminals = removeKind(g.Terminals, KindTime)
		if enabled {
			g.Terminals = append(g.Terminals, Weighted{Kind: KindTime, Weight: 1})
		}
	}
}

// WithWeight sets the weight of k in whichever table lists it.
// Weight 0 removes the kind.
func WithWeight(k Kind, weight int) GrammarOption {
	return func(g *Grammar) {
		table := &g.Composites
		if k.IsTerminal() {
			table = &g.Terminals
		}
		if weight == 0 {
			*table = removeKind(*table, k)
			return
		}
		for i := range *table {
			if (*table)[i].Kind == k {
				(*table)[i].Weight = weight
				return
			}
		}
		*table = append(*table, Weighted{Kind: k, Weight: weight})
	}
}

// DefaultGrammar returns the time-varying grammar: every kind, equal weights.
func DefaultGrammar(opts ...GrammarOption) *Grammar {
	g := &Grammar{
		TerminalProb: DefaultTerminalProb,
		Terminals: []Weighted{
			{KindX, 1},
			{KindY, 1},
			{KindTime, 1},
			{KindRandom, 1},
		},
		Composites: []Weighted{
			{KindAdd, 1},
			{KindMult, 1},
			{KindSqrt, 1},
			{KindAbs, 1},
			{KindSin, 1},
			{KindMod, 1},
			{KindGt, 1},
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// StaticGrammar returns DefaultGrammar without the Time terminal.
func StaticGrammar(opts ...GrammarOption) *Grammar {
	return DefaultGrammar(append([]GrammarOption{WithTime(false)}, opts...)...)
}

// Grammar validation errors.
var (
	ErrEmptyTable   = errors.New("expr: grammar table is empty")
	ErrBadWeight    = errors.New("expr: grammar weight must be positive")
	ErrDuplicate    = errors.New("expr: kind listed more than once")
	ErrWrongState   = errors.New("expr: kind listed in the wrong table")
	ErrTerminalProb = errors.New("expr: terminal probability out of range")
)

// Validate checks that both tables are usable by Generate.
func (g *Grammar) Validate() error {
	if !(g.TerminalProb >= 0 && g.TerminalProb <= 1) {
		return fmt.Errorf("%w: %v", ErrTerminalProb, g.TerminalProb)
	}
	if err := validateTable(g.Terminals, true); err != nil {
		return fmt.Errorf("terminals: %w", err)
	}
	if err := validateTable(g.Composites, false); err != nil {
		return fmt.Errorf("composites: %w", err)
	}
	return nil
}

func validateTable(table []Weighted, terminal bool) error {
	if len(table) == 0 {
		return ErrEmptyTable
	}
	var seen [NumKinds]bool
	for _, w := range table {
		if w.Kind.Arity() < 0 || w.Kind.IsTerminal() != terminal {
			return fmt.Errorf("%w: %s", ErrWrongState, w.Kind)
		}
		if w.Weight <= 0 {
			return fmt.Errorf("%w: %s has weight %d", ErrBadWeight, w.Kind, w.Weight)
		}
		if seen[w.Kind] {
			return fmt.Errorf("%w: %s", ErrDuplicate, w.Kind)
		}
		seen[w.Kind] = true
	}
	return nil
}

// HasTime reports whether the grammar can produce the Time terminal.
func (g *Grammar) HasTime() bool {
	for _, w := range g.Terminals {
		if w.Kind == KindTime {
			return true
		}
	}
	return false
}

func removeKind(table []Weighted, k Kind) []Weighted {
	out := table[:0:0]
	for _, w := range table {
		if w.Kind != k {
			out = append(out, w)
		}
	}
	return out
}

func totalWeight(table []Weighted) int {
	total := 0
	for _, w := range table {
		total += w.Weight
	}
	return total
}
