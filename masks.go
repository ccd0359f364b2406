// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package truthtable

// lengthMask[n] keeps the low 2^n bits of a compact table, i.e. the bits that
// are meaningful for a function of n variables.
var lengthMask = [CompactVars + 1]uint64{
	0x0000000000000001,
	0x0000000000000003,
	0x000000000000000f,
	0x00000000000000ff,
	0x000000000000ffff,
	0x00000000ffffffff,
	0xffffffffffffffff,
}

// varMaskPos[v] has a 1 at every position whose address has bit v set, i.e.
// every row in which variable v is true.
var varMaskPos = [CompactVars]uint64{
	0xaaaaaaaaaaaaaaaa,
	0xcccccccccccccccc,
	0xf0f0f0f0f0f0f0f0,
	0xff00ff00ff00ff00,
	0xffff0000ffff0000,
	0xffffffff00000000,
}

// varMaskNeg[v] is the complement of varMaskPos[v].
var varMaskNeg = [CompactVars]uint64{
	0x5555555555555555,
	0x3333333333333333,
	0x0f0f0f0f0f0f0f0f,
	0x00ff00ff00ff00ff,
	0x0000ffff0000ffff,
	0x00000000ffffffff,
}

// positiveCofactorWord returns the cofactor of w with respect to variable
// v < CompactVars set to 1, within a single 64-bit word.
func positiveCofactorWord(w uint64, v int) uint64 {
	w &= varMaskPos[v]
	return w | w>>(1<<v)
}

// negativeCofactorWord is the counterpart of positiveCofactorWord for v set
// to 0.
func negativeCofactorWord(w uint64, v int) uint64 {
	w &= varMaskNeg[v]
	return w | w<<(1<<v)
}
