// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package truthtable

import "github.com/cockroachdb/errors"

// ErrInvalidInput is the marker carried by every error returned when a
// textual truth table cannot be parsed. Test for it with errors.Is.
var ErrInvalidInput = errors.New("truthtable: invalid input")

func invalidInputf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidInput)
}
