// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package truthtable

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/truthtable/internal/bitvec"
)

// NthVar returns the table of the literal x_v over numVars variables when
// polarity is true, or of its complement when polarity is false. It panics
// unless 0 ≤ v < numVars ≤ MaxVars.
//
// Literals are the base case from which larger functions are assembled:
//
//	f := truthtable.And(truthtable.NthVar(3, 0, true), truthtable.NthVar(3, 2, false))
func NthVar(numVars, v int, polarity bool) TruthTable {
	checkNumVars(numVars)
	if v < 0 || v >= numVars {
		panic(errors.AssertionFailedf("truthtable: variable %d out of range for %d variables", v, numVars))
	}
	t := New(numVars)
	switch {
	case t.IsCompact():
		if polarity {
			t.compact = varMaskPos[v] & lengthMask[numVars]
		} else {
			t.compact = varMaskNeg[v] & lengthMask[numVars]
		}
	case v < CompactVars:
		if polarity {
			bitvec.Fill(t.words, varMaskPos[v])
		} else {
			bitvec.Fill(t.words, varMaskNeg[v])
		}
	default:
		bitvec.FillBlocks(t.words, 1<<(v-CompactVars))
		if !polarity {
			bitvec.Not(t.words, t.words)
		}
	}
	t.checkTail()
	return t
}
