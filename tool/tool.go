// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package tool implements the tt command line tool for inspecting truth
// tables and evaluating operations on them.
package tool

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/truthtable"
	"github.com/cockroachdb/truthtable/internal/ttscript"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// T is the container for all of the tt tools.
type T struct {
	Commands []*cobra.Command
	Show     *cobra.Command
	Info     *cobra.Command
	Var      *cobra.Command
	Eval     *cobra.Command

	logger   Logger
	verbose  bool
	maxRows  int
	negative bool
	bindings bindings
}

// New creates a new tt tool.
func New() *T {
	t := &T{logger: DefaultLogger{}}

	t.Show = &cobra.Command{
		Use:   "show <table>",
		Short: "print a truth table row by row",
		Long: `
Print the rows of a truth table given in its textual form, one row per input
assignment, starting at the assignment with every variable false.
`,
		Args: cobra.ExactArgs(1),
		Run:  t.runShow,
	}
	t.Info = &cobra.Command{
		Use:   "info <table>",
		Short: "summarize a truth table",
		Args:  cobra.ExactArgs(1),
		Run:   t.runInfo,
	}
	t.Var = &cobra.Command{
		Use:   "var <vars> <var>",
		Short: "print the truth table of a single variable",
		Long: `
Print the truth table of the literal x_<var> over <vars> variables, or of its
complement when --negative is given.
`,
		Args: cobra.ExactArgs(2),
		Run:  t.runVar,
	}
	t.Eval = &cobra.Command{
		Use:   "eval <statement>...",
		Short: "evaluate statements over truth tables",
		Long: `
Evaluate each argument as a statement. A statement is an optional binding
"name =" followed by an expression; operands are bound names or literal
tables. Tables can be pre-bound with --let name=table.

  tt eval --let f=1010 "g = not f" "and f g" "pos f 0"

Expressions: <table>, <name>, zero <n>, bits <n> <pattern>, var <n> <v>,
nvar <n> <v>, not <a>, and|or|xor <a> <b>, pos|neg <a> <v>,
deriv|consensus|smooth <a> <v>, set <a> <pos>, get <a> <pos>, eq <a> <b>,
depends <a> <v>.
`,
		Args: cobra.MinimumNArgs(1),
		Run:  t.runEval,
	}

	for _, cmd := range []*cobra.Command{t.Show, t.Var} {
		cmd.Flags().IntVar(
			&t.maxRows, "max-rows", 1024, "refuse to print tables with more rows than this")
	}
	t.Var.Flags().BoolVar(
		&t.negative, "negative", false, "print the complement of the variable")
	t.Eval.Flags().Var(
		&t.bindings, "let", "bind name=table before evaluating (repeatable)")
	t.Eval.Flags().BoolVarP(
		&t.verbose, "verbose", "v", false, "log each statement as it is evaluated")

	t.Commands = []*cobra.Command{t.Show, t.Info, t.Var, t.Eval}
	return t
}

// SetLogger sets the logger used for verbose output.
func (t *T) SetLogger(logger Logger) {
	t.logger = logger
}

func (t *T) runShow(cmd *cobra.Command, args []string) {
	tt, err := truthtable.Parse(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		osExit(1)
		return
	}
	if !t.checkRows(tt.NumBits()) {
		return
	}

	tbl := tablewriter.NewWriter(stdout)
	tbl.SetAutoFormatHeaders(false)
	header := make([]string, 0, tt.NumVars()+1)
	for v := tt.NumVars() - 1; v >= 0; v-- {
		header = append(header, "x"+strconv.Itoa(v))
	}
	tbl.SetHeader(append(header, "f"))
	for row := uint64(0); row < tt.NumBits(); row++ {
		cells := make([]string, 0, tt.NumVars()+1)
		for v := tt.NumVars() - 1; v >= 0; v-- {
			cells = append(cells, bit((row>>v)&1 == 1))
		}
		tbl.Append(append(cells, bit(tt.Get(row))))
	}
	tbl.Render()
}

func (t *T) runInfo(cmd *cobra.Command, args []string) {
	tt, err := truthtable.Parse(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		osExit(1)
		return
	}
	fmt.Fprintf(stdout, "%s\n", tt.Summarize())
}

func (t *T) runVar(cmd *cobra.Command, args []string) {
	numVars, v, err := parseVarArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		osExit(1)
		return
	}
	if !t.checkRows(uint64(1) << numVars) {
		return
	}
	fmt.Fprintf(stdout, "%s\n", truthtable.NthVar(numVars, v, !t.negative))
}

func (t *T) runEval(cmd *cobra.Command, args []string) {
	env := ttscript.NewEnv()
	for _, b := range t.bindings {
		env.Define(b.name, b.table)
	}
	for _, stmt := range args {
		if t.verbose {
			t.logger.Infof("evaluating %q", stmt)
		}
		v, err := env.Eval(stmt)
		switch {
		case err != nil:
			fmt.Fprintf(stdout, "error: %s\n", err)
		case v.Name != "":
			fmt.Fprintf(stdout, "%s = %s\n", v.Name, v)
		default:
			fmt.Fprintf(stdout, "%s\n", v)
		}
	}
}

// checkRows reports whether a table of the given number of rows may be
// printed. Otherwise it writes the reason to stderr and exits.
func (t *T) checkRows(rows uint64) bool {
	switch {
	case t.maxRows < 0:
		fmt.Fprintf(stderr, "--max-rows=%d must not be negative\n", t.maxRows)
	case rows > uint64(t.maxRows):
		fmt.Fprintf(stderr, "table has %d rows, more than --max-rows=%d\n", rows, t.maxRows)
	default:
		return true
	}
	osExit(1)
	return false
}

func parseVarArgs(args []string) (numVars, v int, err error) {
	numVars, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid number of variables %q", args[0])
	}
	if numVars < 0 || numVars > truthtable.MaxVars {
		return 0, 0, errors.Newf("number of variables %d is outside [0, %d]", numVars, truthtable.MaxVars)
	}
	v, err = strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid variable %q", args[1])
	}
	if v < 0 || v >= numVars {
		return 0, 0, errors.Newf("variable %d is outside [0, %d)", v, numVars)
	}
	return numVars, v, nil
}

func bit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// binding is a name=table pair given with --let.
type binding struct {
	name  string
	table truthtable.TruthTable
}

// bindings implements pflag.Value for the repeatable --let flag.
type bindings []binding

func (b *bindings) String() string {
	parts := make([]string, len(*b))
	for i, x := range *b {
		parts[i] = x.name + "=" + x.table.String()
	}
	return strings.Join(parts, ",")
}

func (b *bindings) Type() string {
	return "name=table"
}

func (b *bindings) Set(v string) error {
	name, bits, ok := strings.Cut(v, "=")
	if !ok || name == "" {
		return errors.Newf("expected name=table, got %q", v)
	}
	tt, err := truthtable.Parse(bits)
	if err != nil {
		return err
	}
	*b = append(*b, binding{name: name, table: tt})
	return nil
}
