// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gtech_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/go-air/lnet/gtech"
	"github.com/go-air/lnet/logic"
)

// right hand side forms which map to one statement.
var forms = []string{
	"%s",
	"~%s",
	"(%s) & (%s)",
	"~((%s) | (%s))",
	"(%s) ^ (%s)",
	"~((%s) ^ (%s))",
	"((%s) & (%s)) & (%s)",
	"(%s) | ((%s) | (%s))",
	"~(((%s) ^ (%s)) ^ (%s))",
	"(%s) ? (%s) : (%s)",
	"~((%s) ? (%s) : (%s))",
}

// majority repeats each of its operands.
const majForm = "((%[1]s) & (%[2]s)) | ((%[1]s) & (%[3]s)) | ((%[2]s) & (%[3]s))"

var toExpr = strings.NewReplacer("~", "!", "&", "&&", "|", "||", "^", "!=")

func randOperand(rnd *rand.Rand, n int) string {
	var s string
	if n < 4 {
		s = string(rune('a' + n))
	} else {
		s = fmt.Sprintf("t%d", n-4)
	}
	if rnd.Intn(3) == 0 {
		return "~" + s
	}
	return s
}

type oracleStmt struct {
	lhs, rhs string
	prog     *vm.Program
}

func randStmts(t *testing.T, rnd *rand.Rand, n int) []oracleStmt {
	env := map[string]interface{}{}
	for i := 0; i < 4; i++ {
		env[string(rune('a'+i))] = false
	}
	for i := 0; i < n; i++ {
		env[fmt.Sprintf("t%d", i)] = false
	}
	res := make([]oracleStmt, n)
	for i := range res {
		f := majForm
		if k := rnd.Intn(len(forms) + 1); k < len(forms) {
			f = forms[k]
		}
		var args [3]interface{}
		for j, v := range rnd.Perm(4 + i)[:3] {
			args[j] = randOperand(rnd, v)
		}
		rhs := fmt.Sprintf(f, args[:strings.Count(f, "%s")]...)
		if f == majForm {
			rhs = fmt.Sprintf(f, args[:]...)
		}
		prog, err := expr.Compile(toExpr.Replace(rhs), expr.Env(env), expr.AsBool())
		if err != nil {
			t.Fatalf("%s: %v", rhs, err)
		}
		res[i] = oracleStmt{lhs: fmt.Sprintf("t%d", i), rhs: rhs, prog: prog}
	}
	return res
}

// TestOracle builds random netlists whose statements appear in random
// order and checks every output against an independent evaluation of
// the assignments.
func TestOracle(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for iter := 0; iter < 20; iter++ {
		const n = 30
		stmts := randStmts(t, rnd, n)
		var sb strings.Builder
		var outs []string
		for i := 0; i < n; i++ {
			outs = append(outs, fmt.Sprintf("t%d", i))
		}
		fmt.Fprintf(&sb, "module r(a, b, c, d, %s);\n", strings.Join(outs, ", "))
		fmt.Fprintf(&sb, "  input a, b, c, d;\n  output %s;\n", strings.Join(outs, ", "))
		order := rnd.Perm(n)
		for _, i := range order {
			fmt.Fprintf(&sb, "  assign %s = %s;\n", stmts[i].lhs, stmts[i].rhs)
		}
		sb.WriteString("endmodule\n")
		src := sb.String()

		for _, v := range logic.Variants {
			ntk := logic.New(v)
			if _, _, err := build(t, ntk, "", src); err != nil {
				t.Fatalf("%s: %v\n%s", v, err, src)
			}
			for x := 0; x < 16; x++ {
				ins := bits(x, 4)
				env := map[string]interface{}{"a": ins[0], "b": ins[1], "c": ins[2], "d": ins[3]}
				got := evalPOs(ntk, ins)
				for i, st := range stmts {
					r, err := expr.Run(st.prog, env)
					if err != nil {
						t.Fatal(err)
					}
					env[st.lhs] = r
					if got[i] != r.(bool) {
						t.Fatalf("%s: %s = %s under %v: got %t, want %t\n%s", v, st.lhs, st.rhs, ins, got[i], r, src)
					}
				}
			}
		}
	}
}

func Example() {
	src := `
// 2:1 multiplexer
module mux(s, a, b, y);
  input s, a, b;
  output y;
  assign y = s ? a : b;
endmodule
`
	ntk := logic.NewGTech()
	b := gtech.NewBuilder(ntk, "", nil)
	if err := gtech.Read(strings.NewReader(src), b); err != nil {
		fmt.Println(err)
		return
	}
	info, err := b.Finish()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s: %d inputs, %d outputs, %d gates\n", info.Module, ntk.NumPIs(), ntk.NumPOs(), ntk.NumGates())
	// Output:
	// mux: 3 inputs, 1 outputs, 1 gates
}
