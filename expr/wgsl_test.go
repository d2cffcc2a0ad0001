// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package expr

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// wgslEval evaluates the subset of WGSL that the emitter produces, using
// WGSL f32 semantics: arithmetic in float32, f32(bool) as 1 or 0, and the
// ModFunc and BitsFunc helpers as declared by the artwork shader. It lets
// tests check that emitted text computes what Eval computes.
func wgslEval(src string, sym Symbols, x, y, time float32) (float32, error) {
	v, _, err := wgslEvalConst(src, sym, x, y, time)
	return v, err
}

// wgslEvalConst is wgslEval that also reports whether src is a WGSL
// const-expression: one that reads no variable and calls no user function.
func wgslEvalConst(src string, sym Symbols, x, y, time float32) (float32, bool, error) {
	p := &wgslParser{src: src, sym: sym, x: x, y: y, time: time}
	v, err := p.relational()
	if err != nil {
		return 0, false, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return 0, false, fmt.Errorf("trailing input at %d: %q", p.pos, p.src[p.pos:])
	}
	if v.isBool {
		return 0, false, fmt.Errorf("expression has type bool")
	}
	return v.f, !p.runtime, nil
}

// wgslRem is the WGSL f32 remainder: e1 - e2 * trunc(e1 / e2).
func wgslRem(a, b float32) float32 {
	q := a / b
	return a - b*math32.Trunc(q)
}

type wgslValue struct {
	f      float32
	b      bool
	isBool bool
}

type wgslParser struct {
	src        string
	pos        int
	sym        Symbols
	x, y, time float32
	runtime    bool
}

func (p *wgslParser) skipSpace() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func (p *wgslParser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *wgslParser) expect(c byte) error {
	if p.peek() != c {
		return fmt.Errorf("expected %q at %d in %q", c, p.pos, p.src)
	}
	p.pos++
	return nil
}

// relational := additive [ ">" additive ]
func (p *wgslParser) relational() (wgslValue, error) {
	l, err := p.additive()
	if err != nil || p.peek() != '>' {
		return l, err
	}
	p.pos++
	r, err := p.additive()
	if err != nil {
		return l, err
	}
	return wgslValue{b: l.f > r.f, isBool: true}, nil
}

// additive := multiplicative { "+" multiplicative }
func (p *wgslParser) additive() (wgslValue, error) {
	l, err := p.multiplicative()
	for err == nil && p.peek() == '+' {
		p.pos++
		var r wgslValue
		r, err = p.multiplicative()
		l.f += r.f
	}
	return l, err
}

// multiplicative := unary { "*" unary }
func (p *wgslParser) multiplicative() (wgslValue, error) {
	l, err := p.unary()
	for err == nil && p.peek() == '*' {
		p.pos++
		var r wgslValue
		r, err = p.unary()
		l.f *= r.f
	}
	return l, err
}

// unary := "-" unary | primary
func (p *wgslParser) unary() (wgslValue, error) {
	if p.peek() == '-' {
		p.pos++
		v, err := p.unary()
		v.f = -v.f
		return v, err
	}
	return p.primary()
}

func (p *wgslParser) primary() (wgslValue, error) {
	c := p.peek()
	switch {
	case c == '(':
		p.pos++
		v, err := p.relational()
		if err != nil {
			return v, err
		}
		return v, p.expect(')')
	case c >= '0' && c <= '9':
		return p.number()
	}

	start := p.pos
	for p.pos < len(p.src) && isIdent(p.src[p.pos]) {
		p.pos++
	}
	name := p.src[start:p.pos]
	switch name {
	case p.sym.X:
		p.runtime = true
		return wgslValue{f: p.x}, nil
	case p.sym.Y:
		p.runtime = true
		return wgslValue{f: p.y}, nil
	case p.sym.Time:
		p.runtime = true
		return wgslValue{f: p.time}, nil
	case ModFunc:
		p.runtime = true
		return p.modCall()
	case BitsFunc:
		p.runtime = true
		return p.bitsCall()
	case "sin", "abs", "sqrt", "f32":
		if err := p.expect('('); err != nil {
			return wgslValue{}, err
		}
		arg, err := p.relational()
		if err != nil {
			return arg, err
		}
		if err := p.expect(')'); err != nil {
			return arg, err
		}
		return applyBuiltin(name, arg), nil
	}
	return wgslValue{}, fmt.Errorf("unknown identifier %q at %d", name, start)
}

// modCall parses "(a, b)" after ModFunc.
func (p *wgslParser) modCall() (wgslValue, error) {
	if err := p.expect('('); err != nil {
		return wgslValue{}, err
	}
	a, err := p.relational()
	if err != nil {
		return a, err
	}
	if err := p.expect(','); err != nil {
		return a, err
	}
	b, err := p.relational()
	if err != nil {
		return b, err
	}
	if err := p.expect(')'); err != nil {
		return b, err
	}
	return wgslValue{f: wgslRem(a.f, b.f)}, nil
}

// bitsCall parses "(0x...u)" after BitsFunc.
func (p *wgslParser) bitsCall() (wgslValue, error) {
	if err := p.expect('('); err != nil {
		return wgslValue{}, err
	}
	p.skipSpace()
	if !strings.HasPrefix(p.src[p.pos:], "0x") {
		return wgslValue{}, fmt.Errorf("expected hex literal at %d", p.pos)
	}
	p.pos += 2
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != 'u' {
		p.pos++
	}
	bits, err := strconv.ParseUint(p.src[start:p.pos], 16, 32)
	if err != nil {
		return wgslValue{}, err
	}
	p.pos++ // u
	if err := p.expect(')'); err != nil {
		return wgslValue{}, err
	}
	return wgslValue{f: math.Float32frombits(uint32(bits))}, nil
}

func applyBuiltin(name string, arg wgslValue) wgslValue {
	switch name {
	case "sin":
		return wgslValue{f: math32.Sin(arg.f)}
	case "abs":
		return wgslValue{f: math32.Abs(arg.f)}
	case "sqrt":
		return wgslValue{f: math32.Sqrt(arg.f)}
	default: // f32
		if arg.isBool {
			if arg.b {
				return wgslValue{f: 1}
			}
			return wgslValue{f: 0}
		}
		return arg
	}
}

func (p *wgslParser) number() (wgslValue, error) {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		isExpSign := (c == '-' || c == '+') && p.pos > start && p.src[p.pos-1] == 'e'
		if (c >= '0' && c <= '9') || c == '.' || c == 'e' || isExpSign {
			p.pos++
			continue
		}
		break
	}
	f, err := strconv.ParseFloat(p.src[start:p.pos], 32)
	if err != nil {
		return wgslValue{}, err
	}
	return wgslValue{f: float32(f)}, nil
}

func isIdent(c byte) bool {
	return c == '_' || c == '.' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
