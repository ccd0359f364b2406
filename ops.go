// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package truthtable

import "github.com/cockroachdb/truthtable/internal/bitvec"

// And returns the conjunction of a and b. It panics if a and b do not have
// the same number of variables.
func And(a, b TruthTable) TruthTable {
	return combine(a, b, func(x, y uint64) uint64 { return x & y }, bitvec.And)
}

// Or returns the disjunction of a and b. It panics if a and b do not have the
// same number of variables.
func Or(a, b TruthTable) TruthTable {
	return combine(a, b, func(x, y uint64) uint64 { return x | y }, bitvec.Or)
}

// Xor returns the exclusive or of a and b. It panics if a and b do not have
// the same number of variables.
func Xor(a, b TruthTable) TruthTable {
	return combine(a, b, func(x, y uint64) uint64 { return x ^ y }, bitvec.Xor)
}

// Not returns the complement of a.
func Not(a TruthTable) TruthTable {
	res := New(a.NumVars())
	if a.IsCompact() {
		res.compact = ^a.compact & lengthMask[a.numVars]
	} else {
		bitvec.Not(res.words, a.words)
	}
	res.checkTail()
	return res
}

// Equal returns true if a and b have the same number of variables and the
// same output on every row.
func Equal(a, b TruthTable) bool {
	if a.numVars != b.numVars {
		return false
	}
	if a.IsCompact() {
		return a.compact == b.compact
	}
	return bitvec.Equal(a.words, b.words)
}

// Equal returns true if t and o represent the same function. See Equal.
func (t TruthTable) Equal(o TruthTable) bool {
	return Equal(t, o)
}

func combine(
	a, b TruthTable, word func(x, y uint64) uint64, words func(dst, a, b bitvec.Words),
) TruthTable {
	checkSameVars(a, b)
	res := New(a.NumVars())
	if a.IsCompact() {
		res.compact = word(a.compact, b.compact) & lengthMask[a.numVars]
	} else {
		words(res.words, a.words, b.words)
	}
	res.checkTail()
	return res
}
