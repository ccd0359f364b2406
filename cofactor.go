// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package truthtable

import "github.com/cockroachdb/truthtable/internal/bitvec"

// PositiveCofactor returns t with variable v fixed to 1. The result has the
// same number of variables as t and does not depend on v: the rows where v is
// 1 are copied over the rows where v is 0. It panics if v ≥ NumVars.
func (t TruthTable) PositiveCofactor(v int) TruthTable {
	return t.cofactor(v, true)
}

// NegativeCofactor returns t with variable v fixed to 0. See
// PositiveCofactor.
func (t TruthTable) NegativeCofactor(v int) TruthTable {
	return t.cofactor(v, false)
}

// Derivative returns the Boolean difference of t with respect to v: 1 on
// exactly the rows where flipping v changes the output.
func (t TruthTable) Derivative(v int) TruthTable {
	t.checkVar(v)
	return Xor(t.PositiveCofactor(v), t.NegativeCofactor(v))
}

// Consensus returns the universal quantification of t over v: 1 on exactly
// the rows where the output is 1 for both values of v.
func (t TruthTable) Consensus(v int) TruthTable {
	t.checkVar(v)
	return And(t.PositiveCofactor(v), t.NegativeCofactor(v))
}

// Smoothing returns the existential quantification of t over v: 1 on exactly
// the rows where the output is 1 for some value of v.
func (t TruthTable) Smoothing(v int) TruthTable {
	t.checkVar(v)
	return Or(t.PositiveCofactor(v), t.NegativeCofactor(v))
}

// DependsOn returns true if the output of t changes with v on at least one
// row.
func (t TruthTable) DependsOn(v int) bool {
	return t.Derivative(v).CountOnes() != 0
}

// Support returns the variables t depends on, in increasing order.
func (t TruthTable) Support() []int {
	var vars []int
	for v := 0; v < t.NumVars(); v++ {
		if t.DependsOn(v) {
			vars = append(vars, v)
		}
	}
	return vars
}

func (t TruthTable) cofactor(v int, positive bool) TruthTable {
	t.checkVar(v)
	res := New(t.NumVars())
	word := negativeCofactorWord
	if positive {
		word = positiveCofactorWord
	}
	switch {
	case t.IsCompact():
		res.compact = word(t.compact, v) & lengthMask[t.numVars]
	case v < CompactVars:
		bitvec.Map(res.words, t.words, func(w uint64) uint64 { return word(w, v) })
	default:
		// Variable v selects between blocks of 2^(v-6) whole words.
		bitvec.Broadcast(res.words, t.words, 1<<(v-CompactVars), positive)
	}
	res.checkTail()
	return res
}
