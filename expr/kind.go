// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package expr

// Kind identifies the variant of a node.
type Kind uint8

const (
	// KindX is the horizontal pixel coordinate in [-1, 1].
	KindX Kind = iota

	// KindY is the vertical pixel coordinate in [-1, 1], -1 at the top row.
	KindY

	// KindTime is sin(time), time in seconds.
	KindTime

	// KindRandom is a literal in [-1, 1] fixed when the tree is generated.
	KindRandom

	// KindSqrt is sqrt(abs(a)).
	KindSqrt

	// KindAbs is abs(a).
	KindAbs

	// KindSin is sin(a), radians.
	KindSin

	// KindAdd is a + b.
	KindAdd

	// KindMult is a * b.
	KindMult

	// KindMod is the truncated floating-point remainder of a / b.
	KindMod

	// KindGt is 1 when a > b, otherwise 0.
	KindGt

	// NumKinds is the number of node kinds.
	NumKinds = int(KindGt) + 1
)

var kindNames = [NumKinds]string{
	KindX:      "X",
	KindY:      "Y",
	KindTime:   "Time",
	KindRandom: "Random",
	KindSqrt:   "Sqrt",
	KindAbs:    "Abs",
	KindSin:    "Sin",
	KindAdd:    "Add",
	KindMult:   "Mult",
	KindMod:    "Mod",
	KindGt:     "Gt",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < NumKinds {
		return kindNames[k]
	}
	return "Unknown"
}

// Arity returns the number of children a node of this kind owns.
func (k Kind) Arity() int {
	switch k {
	case KindX, KindY, KindTime, KindRandom:
		return 0
	case KindSqrt, KindAbs, KindSin:
		return 1
	case KindAdd, KindMult, KindMod, KindGt:
		return 2
	default:
		return -1
	}
}

// IsTerminal reports whether k is a leaf kind.
func (k Kind) IsTerminal() bool { return k.Arity() == 0 }

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, NumKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}
