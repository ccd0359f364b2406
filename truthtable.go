// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package truthtable represents Boolean functions of up to MaxVars variables
// as truth tables and implements their algebra: bitwise logic, cofactors,
// and the derivative, consensus and smoothing operators built from them.
//
// Bit i of a table holds the function's output when every variable v is
// assigned bit v of i; variable 0 is the least significant address bit. The
// textual form lists the outputs from the highest address down to address 0,
// so the table of x0 over one variable is "10".
package truthtable

import (
	"math/bits"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/truthtable/internal/bitvec"
	"github.com/cockroachdb/truthtable/internal/invariants"
)

const (
	// MaxVars is the largest number of variables a table may have.
	MaxVars = 32
	// CompactVars is the largest number of variables whose table fits in a
	// single uint64. Wider tables are stored across a slice of words.
	CompactVars = 6
)

// TruthTable is the truth table of a Boolean function of NumVars variables.
//
// A table of at most CompactVars variables is stored inline in a single word;
// wider tables are stored in a word slice. Exactly one of the two is used,
// selected by the number of variables, and every operation dispatches on
// that choice. Bits of the inline word beyond the 2^NumVars valid positions
// are always zero.
//
// TruthTable is a value type. Copies of a wide table share its word slice
// until one of them is modified; Set replaces the receiver's slice before
// writing, so a copy never observes a Set made through another copy.
//
// The zero value is the constant 0 function of zero variables.
type TruthTable struct {
	numVars uint8
	compact uint64
	words   bitvec.Words
}

// New returns the constant 0 function of numVars variables. It panics if
// numVars is negative or larger than MaxVars.
func New(numVars int) TruthTable {
	checkNumVars(numVars)
	t := TruthTable{numVars: uint8(numVars)}
	if numVars > CompactVars {
		t.words = bitvec.Make(uint64(1) << numVars)
	}
	return t
}

// FromBits returns the table of numVars variables whose bits are the literal
// pattern. Bits of pattern at positions ≥ 2^numVars are discarded. For tables
// wider than CompactVars the pattern fills the first 64 positions and the
// remaining positions are 0.
func FromBits(numVars int, pattern uint64) TruthTable {
	t := New(numVars)
	if t.IsCompact() {
		t.compact = pattern & lengthMask[numVars]
	} else {
		t.words[0] = pattern
	}
	return t
}

// FromBools returns the table of numVars variables whose bit i is bits[i].
// len(bits) must be exactly 2^numVars.
func FromBools(numVars int, bits []bool) TruthTable {
	t := New(numVars)
	if uint64(len(bits)) != t.NumBits() {
		panic(errors.AssertionFailedf("truthtable: %d bits given for %d variables (want %d)",
			len(bits), numVars, t.NumBits()))
	}
	for i, b := range bits {
		if b {
			t.setOwned(uint64(i))
		}
	}
	return t
}

// Parse parses the textual form of a truth table: a string of '0' and '1'
// characters whose length is a power of two, listing outputs from the highest
// address down to address 0. The number of variables is the base-2 logarithm
// of the length. Malformed input returns an error marked with
// ErrInvalidInput.
func Parse(s string) (TruthTable, error) {
	n := uint64(len(s))
	numVars, ok := log2Exact(n)
	if !ok || numVars > MaxVars {
		return TruthTable{}, invalidInputf(
			"truthtable: length %d is not a power of two between 1 and 2^%d", len(s), MaxVars)
	}
	t := New(numVars)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			t.setOwned(n - 1 - uint64(i))
		case '0':
		default:
			return TruthTable{}, invalidInputf(
				"truthtable: invalid character %q at offset %d", s[i], i)
		}
	}
	return t, nil
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) TruthTable {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// NumVars returns the number of variables of the function.
func (t TruthTable) NumVars() int {
	return int(t.numVars)
}

// NumBits returns the number of rows in the table, 2^NumVars.
func (t TruthTable) NumBits() uint64 {
	return uint64(1) << t.numVars
}

// IsCompact returns true if the table is stored inline in a single word.
func (t TruthTable) IsCompact() bool {
	return t.numVars <= CompactVars
}

// Bits returns the inline word of a compact table. It panics if the table is
// not compact.
func (t TruthTable) Bits() uint64 {
	if !t.IsCompact() {
		panic(errors.AssertionFailedf("truthtable: Bits called on a table of %d variables", t.numVars))
	}
	return t.compact
}

// Get returns the output at row pos. It panics if pos ≥ NumBits.
func (t TruthTable) Get(pos uint64) bool {
	t.checkPos(pos)
	if t.IsCompact() {
		return (t.compact>>pos)&1 == 1
	}
	return t.words.Get(pos)
}

// Set sets the output at row pos to 1. It panics if pos ≥ NumBits. There is
// no way to clear a bit; build a new table instead.
//
// Set on a wide table copies its words first, which costs O(NumBits/64).
func (t *TruthTable) Set(pos uint64) {
	t.checkPos(pos)
	if !t.IsCompact() {
		t.words = t.words.Clone()
	}
	t.setOwned(pos)
}

// setOwned sets the output at row pos in place. The caller must hold the only
// reference to t.words.
func (t *TruthTable) setOwned(pos uint64) {
	if t.IsCompact() {
		t.compact |= 1 << pos
		t.compact &= lengthMask[t.numVars]
		return
	}
	t.words.Set(pos)
}

// Clone returns a copy of t that shares no memory with it.
func (t TruthTable) Clone() TruthTable {
	c := t
	if t.words != nil {
		c.words = t.words.Clone()
	}
	return c
}

// Bools returns the table as a slice in which element i is the output at row
// i. It is the inverse of FromBools.
func (t TruthTable) Bools() []bool {
	res := make([]bool, t.NumBits())
	for i := range res {
		res[i] = t.Get(uint64(i))
	}
	return res
}

// String returns the textual form of the table, the inverse of Parse.
func (t TruthTable) String() string {
	n := t.NumBits()
	buf := make([]byte, n)
	for i := uint64(0); i < n; i++ {
		if t.Get(n - 1 - i) {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// SafeFormat implements redact.SafeFormatter.
func (t TruthTable) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Print(redact.SafeString(t.String()))
}

// log2Exact returns k if n == 2^k.
func log2Exact(n uint64) (k int, ok bool) {
	if n == 0 || n&(n-1) != 0 {
		return 0, false
	}
	return bits.TrailingZeros64(n), true
}

// checkTail verifies in invariant builds that no bit outside the table's
// window is set.
func (t TruthTable) checkTail() {
	if invariants.Enabled && t.IsCompact() {
		invariants.ZeroAbove(t.compact, uint(t.NumBits()))
	}
}

func checkNumVars(numVars int) {
	if numVars < 0 || numVars > MaxVars {
		panic(errors.AssertionFailedf("truthtable: %d variables is outside [0, %d]", numVars, MaxVars))
	}
}

func (t TruthTable) checkPos(pos uint64) {
	if pos >= t.NumBits() {
		panic(errors.AssertionFailedf("truthtable: bit %d out of range for %d variables", pos, t.numVars))
	}
}

func (t TruthTable) checkVar(v int) {
	if v < 0 || v >= int(t.numVars) {
		panic(errors.AssertionFailedf("truthtable: variable %d out of range for %d variables", v, t.numVars))
	}
}

func checkSameVars(a, b TruthTable) {
	if a.numVars != b.numVars {
		panic(errors.AssertionFailedf("truthtable: operands have %d and %d variables", a.numVars, b.numVars))
	}
}
