// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"github.com/go-air/lnet"
	"github.com/go-air/lnet/logic"
)

const top = `module top(a, b, y); input a, b; output y; assign y = a & b; endmodule`

func TestFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lnet.yaml")
	data := "variant: gtech\ntop: alu\nknown: [clk]\nsim:\n  n: 4\n  seed: 9\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	fc, err := readFileConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg := &MainConfig{Top: "cpu"}
	cfg.merge(fc)
	if cfg.Variant != "gtech" || cfg.Top != "cpu" || cfg.File.Sim.N != 4 || cfg.File.Sim.Seed != 9 {
		t.Errorf("merged config %+v", cfg)
	}
	if d := cmp.Diff([]string{"clk"}, cfg.Known); d != "" {
		t.Errorf("known (-want +got):\n%s", d)
	}
	v, err := cfg.variant()
	if err != nil || v != logic.GTech {
		t.Errorf("variant %v %v", v, err)
	}
	cfg.Variant = "nope"
	if _, err := cfg.variant(); err == nil {
		t.Errorf("no error for unknown variant")
	}
}

func TestWriteStats(t *testing.T) {
	color.NoColor = true
	ntk, info, err := lnet.Read(strings.NewReader(top))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	writeStats(&buf, ntk, &info)
	exp := "top (primary)\n  inputs  2\n  outputs 1\n  gates   1\n  depth   1\ngates\n  and      1\n"
	if d := cmp.Diff(exp, buf.String()); d != "" {
		t.Errorf("stats (-want +got):\n%s", d)
	}
}

func TestSimulate(t *testing.T) {
	ntk, _, err := lnet.Read(strings.NewReader(top))
	if err != nil {
		t.Fatal(err)
	}
	var a, b bytes.Buffer
	simulate(&a, ntk, 3, 1)
	simulate(&b, ntk, 3, 1)
	if a.String() != b.String() {
		t.Errorf("simulation depends on more than the seed")
	}
	fields := strings.Fields(a.String())
	if len(fields) != 4 || fields[0] != "0" || len(fields[1]) != 16 {
		t.Errorf("output %q", a.String())
	}
}

func TestFileArg(t *testing.T) {
	if f, err := fileArg(nil); f != "-" || err != nil {
		t.Errorf("no args: %q %v", f, err)
	}
	if _, err := fileArg([]string{"a", "b"}); err == nil {
		t.Errorf("no error for 2 files")
	}
}
