// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package ttscript evaluates one-line statements over named truth tables. It
// drives the datadriven tests and the tt tool's eval command.
//
// A statement is an optional binding followed by an expression:
//
//	f = 1010
//	g = and f 1100
//	pos g 1
//	eq f g
//
// Operands are either the name of a bound table or a literal binary string.
// The expressions are:
//
//	<bits>                  literal table, e.g. 0110
//	<name>                  a bound table
//	zero <n>                constant 0 over n variables
//	bits <n> <pattern>      table from an integer pattern (0x/0b accepted)
//	var <n> <v>             the literal x_v over n variables
//	nvar <n> <v>            the complement of x_v
//	not <a>
//	and|or|xor <a> <b>
//	pos|neg <a> <v>         positive/negative cofactor
//	deriv|consensus|smooth <a> <v>
//	set <a> <pos>           copy of a with the bit at pos set
//	get <a> <pos>           boolean
//	eq <a> <b>              boolean
//	depends <a> <v>         boolean
package ttscript

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/truthtable"
	"github.com/cockroachdb/truthtable/internal/strparse"
)

// Value is the result of evaluating a statement: a table or a boolean.
type Value struct {
	// Name is the name the statement bound its result to, if any.
	Name  string
	Table truthtable.TruthTable

	isBool bool
	b      bool
}

// IsBool returns true if the value is a boolean rather than a table.
func (v Value) IsBool() bool {
	return v.isBool
}

// Bool returns the boolean value. It is false for table values.
func (v Value) Bool() bool {
	return v.b
}

func (v Value) String() string {
	if v.isBool {
		return strconv.FormatBool(v.b)
	}
	return v.Table.String()
}

// Env holds the tables bound by previously evaluated statements.
type Env struct {
	tables map[string]truthtable.TruthTable
}

// NewEnv returns an empty environment.
func NewEnv() *Env {
	return &Env{tables: make(map[string]truthtable.TruthTable)}
}

// Lookup returns the table bound to name.
func (e *Env) Lookup(name string) (truthtable.TruthTable, bool) {
	t, ok := e.tables[name]
	return t, ok
}

// Define binds name to t, replacing any previous binding.
func (e *Env) Define(name string, t truthtable.TruthTable) {
	e.tables[name] = t
}

// Eval evaluates a single statement. Parse errors, malformed literals and
// violated operator preconditions (for example and-ing tables of different
// widths) are all returned as errors. Any other panic is propagated.
func (e *Env) Eval(stmt string) (res Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr := evalError(r)
			if rerr == nil {
				panic(r)
			}
			res, err = Value{}, rerr
		}
	}()

	p := strparse.MakeParser("=", stmt)
	if strings.Contains(stmt, "=") {
		res.Name = p.Next()
		if !isName(res.Name) || isOp(res.Name) {
			p.Errf("invalid name")
		}
		p.Expect("=")
	}
	if p.Done() {
		p.Errf("missing expression")
	}
	v := e.expr(&p)
	if !p.Done() {
		p.Errf("unexpected token %q", p.Next())
	}
	v.Name = res.Name
	if v.Name != "" {
		if v.isBool {
			return Value{}, errors.Newf("cannot bind boolean result to %q", v.Name)
		}
		e.Define(v.Name, v.Table)
	}
	return v, nil
}

// evalError returns the error carried by a panic raised while evaluating a
// statement, or nil if the panic is not one Eval reports.
func evalError(r any) error {
	err, ok := r.(error)
	if !ok {
		return nil
	}
	if errors.Is(err, strparse.ErrSyntax) || errors.Is(err, truthtable.ErrInvalidInput) ||
		errors.HasAssertionFailure(err) {
		return err
	}
	return nil
}

func (e *Env) expr(p *strparse.Parser) Value {
	tok := p.Peek()
	if isLiteral(tok) || isName(tok) && !isOp(tok) {
		return Value{Table: e.operand(p)}
	}
	p.Next()
	switch tok {
	case "zero":
		return Value{Table: truthtable.New(p.Int())}
	case "bits":
		n := p.Int()
		return Value{Table: truthtable.FromBits(n, p.Uint64())}
	case "var", "nvar":
		n := p.Int()
		return Value{Table: truthtable.NthVar(n, p.Int(), tok == "var")}
	case "not":
		return Value{Table: truthtable.Not(e.operand(p))}
	case "and", "or", "xor":
		a := e.operand(p)
		b := e.operand(p)
		switch tok {
		case "and":
			return Value{Table: truthtable.And(a, b)}
		case "or":
			return Value{Table: truthtable.Or(a, b)}
		default:
			return Value{Table: truthtable.Xor(a, b)}
		}
	case "pos", "neg", "deriv", "consensus", "smooth":
		a := e.operand(p)
		v := p.Int()
		switch tok {
		case "pos":
			return Value{Table: a.PositiveCofactor(v)}
		case "neg":
			return Value{Table: a.NegativeCofactor(v)}
		case "deriv":
			return Value{Table: a.Derivative(v)}
		case "consensus":
			return Value{Table: a.Consensus(v)}
		default:
			return Value{Table: a.Smoothing(v)}
		}
	case "set":
		a := e.operand(p)
		a.Set(p.Uint64())
		return Value{Table: a}
	case "get":
		a := e.operand(p)
		return Value{isBool: true, b: a.Get(p.Uint64())}
	case "eq":
		a := e.operand(p)
		return Value{isBool: true, b: truthtable.Equal(a, e.operand(p))}
	case "depends":
		a := e.operand(p)
		return Value{isBool: true, b: a.DependsOn(p.Int())}
	default:
		p.Errf("unknown operator")
		return Value{}
	}
}

// operand consumes a table operand: a literal or a bound name.
func (e *Env) operand(p *strparse.Parser) truthtable.TruthTable {
	tok := p.Peek()
	if isLiteral(tok) {
		t, err := truthtable.Parse(p.Next())
		if err != nil {
			panic(err)
		}
		return t
	}
	if !isName(tok) {
		p.Errf("expected table operand")
	}
	t, ok := e.Lookup(p.Next())
	if !ok {
		p.Errf("undefined table")
	}
	return t
}

var ops = map[string]struct{}{
	"zero": {}, "bits": {}, "var": {}, "nvar": {}, "not": {}, "and": {}, "or": {},
	"xor": {}, "pos": {}, "neg": {}, "deriv": {}, "consensus": {}, "smooth": {},
	"set": {}, "get": {}, "eq": {}, "depends": {},
}

func isOp(tok string) bool {
	_, ok := ops[tok]
	return ok
}

// isLiteral returns true for tokens that start like a binary string. Whether
// the rest of the token is well formed is left to truthtable.Parse.
func isLiteral(tok string) bool {
	return tok != "" && tok[0] >= '0' && tok[0] <= '9'
}

func isName(tok string) bool {
	if tok == "" {
		return false
	}
	for i, r := range tok {
		switch {
		case r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
