// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package truthtable

import (
	"encoding/binary"
	"math/bits"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/cockroachdb/redact"
)

// CountOnes returns the number of rows on which the function is 1.
func (t TruthTable) CountOnes() uint64 {
	if t.IsCompact() {
		return uint64(bits.OnesCount64(t.compact))
	}
	return t.words.OnesCount()
}

// IsConst returns the constant value of the function and ok=true if the
// function has the same output on every row.
func (t TruthTable) IsConst() (value bool, ok bool) {
	switch t.CountOnes() {
	case 0:
		return false, true
	case t.NumBits():
		return true, true
	default:
		return false, false
	}
}

// Hash returns a 64-bit fingerprint of the function. Equal tables have equal
// hashes. The number of variables is part of the hashed input.
func (t TruthTable) Hash() uint64 {
	var buf [9]byte
	buf[0] = t.numVars
	if t.IsCompact() {
		binary.LittleEndian.PutUint64(buf[1:], t.compact)
		return xxhash.Sum64(buf[:])
	}
	d := xxhash.New()
	_, _ = d.Write(buf[:1])
	for _, w := range t.words {
		binary.LittleEndian.PutUint64(buf[1:], w)
		_, _ = d.Write(buf[1:])
	}
	return d.Sum64()
}

// Summary describes the shape of a table without listing its rows.
type Summary struct {
	NumVars int
	NumBits uint64
	Ones    uint64
	Compact bool
	Support []int
	Hash    uint64
}

// Summarize returns the Summary of t.
func (t TruthTable) Summarize() Summary {
	return Summary{
		NumVars: t.NumVars(),
		NumBits: t.NumBits(),
		Ones:    t.CountOnes(),
		Compact: t.IsCompact(),
		Support: t.Support(),
		Hash:    t.Hash(),
	}
}

func (s Summary) String() string {
	return redact.StringWithoutMarkers(s)
}

// SafeFormat implements redact.SafeFormatter.
func (s Summary) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("vars=%d rows=%s ones=%s", s.NumVars,
		crhumanize.Count(s.NumBits, crhumanize.Compact), crhumanize.Count(s.Ones, crhumanize.Compact))
	if s.Compact {
		w.SafeString(" compact")
	} else {
		w.Printf(" size=%s", crhumanize.Bytes(s.NumBits/8, crhumanize.Compact, crhumanize.OmitI))
	}
	w.Printf(" support=%v hash=%016x", redact.Safe(s.Support), redact.Safe(s.Hash))
}
