package genart

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"

	"github.com/gogpu/genart/expr"
)

// Seed determines the three channel trees of an artwork. The same seed and
// depth always produce the same trees.
type Seed uint64

// NewSeed returns a seed drawn from the system entropy source. It is the
// only place ambient randomness enters the engine.
func NewSeed() Seed {
	var b [8]byte
	_, _ = rand.Read(b[:]) // never fails
	return Seed(binary.LittleEndian.Uint64(b[:]))
}

// String returns the seed in decimal, the form accepted by ParseSeed.
func (s Seed) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// ParseSeed parses a decimal or 0x-prefixed hexadecimal seed.
func ParseSeed(s string) (Seed, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, err
	}
	return Seed(v), nil
}

// Channel indexes the color channels of an artwork.
type Channel int

// Color channels, in generation order.
const (
	ChannelR Channel = iota
	ChannelG
	ChannelB
)

// String returns the channel letter.
func (c Channel) String() string {
	switch c {
	case ChannelR:
		return "R"
	case ChannelG:
		return "G"
	case ChannelB:
		return "B"
	default:
		return "Unknown"
	}
}

// Channels holds the red, green and blue trees of an artwork.
type Channels [3]*expr.Tree

// GenerateChannels grows the three channel trees from one generator stream
// seeded with seed: red first, then green, then blue. A nil grammar uses
// expr.DefaultGrammar.
func GenerateChannels(seed Seed, maxDepth uint32, g *expr.Grammar) Channels {
	rng := expr.NewRand(uint64(seed))
	var ch Channels
	for i := range ch {
		ch[i] = expr.Generate(maxDepth, rng, g)
	}
	return ch
}

// Eval evaluates all three channels at (x, y) and time t.
func (c Channels) Eval(x, y, t float32) (r, g, b float32) {
	return c[ChannelR].Eval(x, y, t), c[ChannelG].Eval(x, y, t), c[ChannelB].Eval(x, y, t)
}

// WGSL returns the WGSL expression of each channel.
func (c Channels) WGSL() [3]string {
	var out [3]string
	for i, t := range c {
		out[i] = expr.EmitWGSL(t)
	}
	return out
}

// Equal reports whether all three trees are structurally equal.
func (c Channels) Equal(o Channels) bool {
	for i := range c {
		if !c[i].Equal(o[i]) {
			return false
		}
	}
	return true
}
