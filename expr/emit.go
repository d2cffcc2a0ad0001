// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package expr

import (
	"fmt"
	"math"
	"strconv"
)

// Symbols names the WGSL values a tree reads.
type Symbols struct {
	X    string // f32 horizontal coordinate
	Y    string // f32 vertical coordinate
	Time string // f32 time in seconds
}

// Functions the hosting shader must declare:
//
//	fn genart_mod(a: f32, b: f32) -> f32 { return a % b; }
//	fn genart_bits(v: u32) -> f32 { return bitcast<f32>(v); }
//
// A call to a user-declared function is never a WGSL const-expression. Mod
// and non-finite literals go through these calls, so no literal-only
// subexpression of an emitted tree can evaluate to NaN or Inf at shader
// creation time.
const (
	ModFunc  = "genart_mod"
	BitsFunc = "genart_bits"
)

// DefaultSymbols matches the locals and uniform declared by the shader
// package template.
var DefaultSymbols = Symbols{X: "x", Y: "y", Time: "u.time"}

// EmitWGSL returns the tree as a single WGSL f32 expression using
// DefaultSymbols.
func EmitWGSL(t *Tree) string {
	return string(AppendWGSL(nil, t))
}

// EmitWGSLWith is EmitWGSL with caller-chosen symbol names.
func EmitWGSLWith(t *Tree, sym Symbols) string {
	return string(sym.AppendWGSL(nil, t))
}

// AppendWGSL appends the WGSL expression for t to b using DefaultSymbols.
func AppendWGSL(b []byte, t *Tree) []byte {
	return DefaultSymbols.AppendWGSL(b, t)
}

// AppendWGSL appends the WGSL expression for t to b.
//
// Every node becomes exactly one parenthesized template, so the output never
// depends on WGSL operator precedence.
func (s Symbols) AppendWGSL(b []byte, t *Tree) []byte {
	return s.appendWGSL(b, t, 0)
}

// appendWGSL must stay in lock-step with eval in eval.go.
func (s Symbols) appendWGSL(b []byte, t *Tree, i int32) []byte {
	n := &t.nodes[i]
	switch n.kind {
	case KindX:
		return append(append(append(b, '('), s.X...), ')')
	case KindY:
		return append(append(append(b, '('), s.Y...), ')')
	case KindTime:
		b = append(b, "(sin("...)
		b = append(b, s.Time...)
		return append(b, "))"...)
	case KindRandom:
		b = append(b, "(f32("...)
		b = appendF32(b, n.value)
		return append(b, "))"...)

	case KindSqrt:
		return s.appendCall(b, "sqrt(abs(", t, i+1, "))")
	case KindAbs:
		return s.appendCall(b, "abs(", t, i+1, ")")
	case KindSin:
		return s.appendCall(b, "sin(", t, i+1, ")")

	case KindAdd:
		return s.appendInfix(b, t, i+1, " + ", n.right)
	case KindMult:
		return s.appendInfix(b, t, i+1, " * ", n.right)
	case KindMod:
		b = append(b, '(')
		b = append(b, ModFunc...)
		b = append(b, '(')
		b = s.appendWGSL(b, t, i+1)
		b = append(b, ", "...)
		b = s.appendWGSL(b, t, n.right)
		return append(b, "))"...)
	case KindGt:
		b = append(b, "(f32("...)
		b = s.appendWGSL(b, t, i+1)
		b = append(b, " > "...)
		b = s.appendWGSL(b, t, n.right)
		return append(b, "))"...)

	default:
		panic(fmt.Sprintf("expr: emit: unhandled kind %d", n.kind))
	}
}

func (s Symbols) appendCall(b []byte, open string, t *Tree, child int32, closing string) []byte {
	b = append(b, '(')
	b = append(b, open...)
	b = s.appendWGSL(b, t, child)
	b = append(b, closing...)
	return append(b, ')')
}

func (s Symbols) appendInfix(b []byte, t *Tree, left int32, op string, right int32) []byte {
	b = append(b, '(')
	b = s.appendWGSL(b, t, left)
	b = append(b, op...)
	b = s.appendWGSL(b, t, right)
	return append(b, ')')
}

// appendF32 writes v as a WGSL float literal that converts back to exactly v.
// WGSL has no NaN or infinity literals, so those are spelled as BitsFunc
// calls on the IEEE bit pattern.
func appendF32(b []byte, v float32) []byte {
	if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		b = append(b, BitsFunc...)
		b = append(b, "(0x"...)
		b = strconv.AppendUint(b, uint64(math.Float32bits(v)), 16)
		return append(b, "u)"...)
	}
	start := len(b)
	b = strconv.AppendFloat(b, float64(v), 'g', -1, 32)
	for _, c := range b[start:] {
		if c == '.' || c == 'e' {
			return b
		}
	}
	return append(b, ".0"...)
}
