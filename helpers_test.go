// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package truthtable

import (
	"testing"

	"github.com/kr/pretty"
	"golang.org/x/exp/rand"
)

// refTable is a naive truth table used as the reference model in tests: row i
// of the function is element i.
type refTable []bool

func randRef(rng *rand.Rand, numVars int) refTable {
	r := make(refTable, 1<<numVars)
	for i := range r {
		r[i] = rng.Intn(2) == 1
	}
	return r
}

func (r refTable) mapRows(fn func(i int) bool) refTable {
	res := make(refTable, len(r))
	for i := range res {
		res[i] = fn(i)
	}
	return res
}

func (r refTable) and(o refTable) refTable {
	return r.mapRows(func(i int) bool { return r[i] && o[i] })
}

func (r refTable) or(o refTable) refTable {
	return r.mapRows(func(i int) bool { return r[i] || o[i] })
}

func (r refTable) xor(o refTable) refTable {
	return r.mapRows(func(i int) bool { return r[i] != o[i] })
}

func (r refTable) not() refTable {
	return r.mapRows(func(i int) bool { return !r[i] })
}

func (r refTable) positiveCofactor(v int) refTable {
	return r.mapRows(func(i int) bool { return r[i|1<<v] })
}

func (r refTable) negativeCofactor(v int) refTable {
	return r.mapRows(func(i int) bool { return r[i&^(1<<v)] })
}

func (r refTable) literal(v int, polarity bool) refTable {
	return r.mapRows(func(i int) bool { return (i>>v)&1 == 1 == polarity })
}

// requireMatches fails the test if t does not hold exactly the rows of ref.
func requireMatches(tb testing.TB, ref refTable, t TruthTable) {
	tb.Helper()
	if uint64(len(ref)) != t.NumBits() {
		tb.Fatalf("table has %d rows; reference has %d", t.NumBits(), len(ref))
	}
	got := t.Bools()
	for i := range ref {
		if got[i] != ref[i] {
			if len(ref) <= 64 {
				tb.Fatalf("row %d: got %t, want %t\n%s", i, got[i], ref[i],
					pretty.Diff([]bool(ref), got))
			}
			tb.Fatalf("row %d: got %t, want %t", i, got[i], ref[i])
		}
	}
}
