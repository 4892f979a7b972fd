// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Spec gives the shape of a random netlist.
type Spec struct {
	Inputs  int
	Gates   int
	Outputs int

	// Shuffle writes the statements in random order.
	Shuffle bool

	// Assign writes some gates as assign statements.
	Assign bool
}

var gateKinds = []struct {
	name  string
	arity int
}{
	{"buf", 1}, {"not", 1},
	{"and", 2}, {"nand", 2}, {"or", 2}, {"nor", 2},
	{"xor", 2}, {"xnor", 2}, {"lt", 2}, {"le", 2},
	{"and3", 3}, {"or3", 3}, {"xor3", 3}, {"nand3", 3}, {"nor3", 3},
	{"maj", 3}, {"mux", 3}, {"nmux", 3},
	{"aoi21", 3}, {"oai21", 3}, {"axi21", 3}, {"xai21", 3}, {"oxi21", 3}, {"xoi21", 3}}

var assignForms = []struct {
	format string
	arity  int
}{
	{"%s & %s", 2}, {"~(%s | %s)", 2}, {"%s ^ %s", 2},
	{"%s & %s & %s", 3}, {"~(%s ^ %s ^ %s)", 3}, {"%s ? %s : %s", 3}}

func (s *Spec) signal(i int) string {
	if i < s.Inputs {
		return fmt.Sprintf("x%d", i)
	}
	return fmt.Sprintf("g%d", i-s.Inputs)
}

func (s *Spec) operand(i int) string {
	m := s.signal(rng.Intn(s.Inputs + i))
	if rng.Intn(2) == 1 {
		return "~" + m
	}
	return m
}

// RandNetlist writes a random gtech netlist of one module named "rand"
// with shape s to w.  Inputs are named x0, x1, ...  and outputs y0, y1,
// ...; output i is driven by one of the last gates.
func RandNetlist(w io.Writer, s Spec) error {
	mu.Lock() // for package rng
	defer mu.Unlock()
	if s.Inputs < 1 || s.Gates < s.Outputs {
		return errors.Errorf("gen: cannot make %d outputs from %d gates on %d inputs", s.Outputs, s.Gates, s.Inputs)
	}
	stmts := make([]string, 0, s.Gates+s.Outputs)
	for i := 0; i < s.Gates; i++ {
		lhs := fmt.Sprintf("g%d", i)
		if s.Assign && rng.Intn(3) == 0 {
			f := assignForms[rng.Intn(len(assignForms))]
			args := make([]interface{}, f.arity)
			for j := range args {
				args[j] = s.operand(i)
			}
			stmts = append(stmts, fmt.Sprintf("assign %s = "+f.format+";", append([]interface{}{lhs}, args...)...))
			continue
		}
		k := gateKinds[rng.Intn(len(gateKinds))]
		ops := []string{lhs}
		for j := 0; j < k.arity; j++ {
			ops = append(ops, s.operand(i))
		}
		stmts = append(stmts, fmt.Sprintf("%s u%d (%s);", k.name, i, strings.Join(ops, ", ")))
	}
	for i := 0; i < s.Outputs; i++ {
		stmts = append(stmts, fmt.Sprintf("assign y%d = g%d;", i, s.Gates-s.Outputs+i))
	}
	if s.Shuffle {
		rng.Shuffle(len(stmts), func(i, j int) { stmts[i], stmts[j] = stmts[j], stmts[i] })
	}
	ins := names("x", s.Inputs)
	outs := names("y", s.Outputs)
	var sb strings.Builder
	fmt.Fprintf(&sb, "module rand(%s);\n", strings.Join(append(ins, outs...), ", "))
	fmt.Fprintf(&sb, "  input %s;\n", strings.Join(ins, ", "))
	if s.Outputs > 0 {
		fmt.Fprintf(&sb, "  output %s;\n", strings.Join(outs, ", "))
	}
	for _, st := range stmts {
		sb.WriteString("  ")
		sb.WriteString(st)
		sb.WriteByte('\n')
	}
	sb.WriteString("endmodule\n")
	_, err := io.WriteString(w, sb.String())
	return errors.Wrap(err, "gen")
}

func names(prefix string, n int) []string {
	res := make([]string, n)
	for i := range res {
		res[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return res
}

// Chain writes a module "chain" with input x and output y connected by
// a chain of n inverters.  If reverse is true, the inverters are written
// from output to input, so that a reader defers all of them until the
// last one is read.
func Chain(w io.Writer, n int, reverse bool) error {
	if n < 0 {
		return errors.Errorf("gen: chain of %d inverters", n)
	}
	var sb strings.Builder
	sb.WriteString("module chain(x, y);\n  input x;\n  output y;\n")
	if n == 0 {
		sb.WriteString("  assign y = x;\n")
	} else {
		sb.WriteString("  assign y = w0;\n")
	}
	for i := 0; i < n; i++ {
		j := i
		if !reverse {
			j = n - 1 - i
		}
		in := "x"
		if j < n-1 {
			in = fmt.Sprintf("w%d", j+1)
		}
		fmt.Fprintf(&sb, "  not (w%d, %s);\n", j, in)
	}
	sb.WriteString("endmodule\n")
	_, err := io.WriteString(w, sb.String())
	return errors.Wrap(err, "gen")
}
