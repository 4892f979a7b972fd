// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/go-air/lnet"
	"github.com/go-air/lnet/gtech"
	"github.com/go-air/lnet/logic"
)

type MainConfig struct {
	Config  string `cli:"name=c aliases=config desc='yaml configuration file'"`
	Variant string `cli:"name=variant desc='network variant: primary, gtg, hgtg or gtech'"`
	Top     string `cli:"name=top desc='module to build (default last)'"`
	Color   string `cli:"name=color desc='color diagnostics: auto, always or never'"`
	Verbose bool   `cli:"name=v desc='trace reading'"`

	Known []string
	File  *FileConfig

	Main *cli.Command
}

// FileConfig is the content of a configuration file.  Options given on
// the command line take precedence.
type FileConfig struct {
	Variant string   `yaml:"variant"`
	Top     string   `yaml:"top"`
	Color   string   `yaml:"color"`
	Known   []string `yaml:"known"`
	Sim     struct {
		N    int   `yaml:"n"`
		Seed int64 `yaml:"seed"`
	} `yaml:"sim"`
}

func readFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fc := &FileConfig{}
	if err := yaml.Unmarshal(data, fc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fc, nil
}

// merge fills the options of cfg which are not set from fc.
func (cfg *MainConfig) merge(fc *FileConfig) {
	cfg.File = fc
	if cfg.Variant == "" {
		cfg.Variant = fc.Variant
	}
	if cfg.Top == "" {
		cfg.Top = fc.Top
	}
	if cfg.Color == "" {
		cfg.Color = fc.Color
	}
	cfg.Known = append(cfg.Known, fc.Known...)
}

func (cfg *MainConfig) variant() (*logic.Variant, error) {
	if cfg.Variant == "" {
		return logic.Primary, nil
	}
	v := logic.VariantNamed(cfg.Variant)
	if v == nil {
		return nil, fmt.Errorf("%w: unknown variant %q", cli.ErrUsage, cfg.Variant)
	}
	return v, nil
}

func (cfg *MainConfig) printer(w io.Writer) (*gtech.Printer, error) {
	p := gtech.NewPrinter(w)
	switch cfg.Color {
	case "", "auto":
	case "always":
		p.SetColor(true)
	case "never":
		p.SetColor(false)
	default:
		return nil, fmt.Errorf("%w: -color %q", cli.ErrUsage, cfg.Color)
	}
	if cfg.Verbose {
		p.SetMin(gtech.SevNote)
	}
	return p, nil
}

// read reads the network in file, or in standard input if file is "-".
func (cfg *MainConfig) read(cc *cli.Context, file string) (*logic.Network, gtech.PortInfo, error) {
	v, err := cfg.variant()
	if err != nil {
		return nil, gtech.PortInfo{}, err
	}
	p, err := cfg.printer(os.Stderr)
	if err != nil {
		return nil, gtech.PortInfo{}, err
	}
	var r io.Reader = cc.In
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, gtech.PortInfo{}, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	if cfg.Verbose {
		log.Printf("reading %s as %s", file, v)
	}
	ntk, info, err := lnet.Read(r,
		lnet.Variant(v),
		lnet.Top(cfg.Top),
		lnet.Diagnostics(p),
		lnet.Known(cfg.Known...))
	if err != nil {
		return nil, info, fmt.Errorf("%s: %w", file, err)
	}
	if cfg.Verbose {
		log.Printf("read module %s: %d nodes", info.Module, ntk.Size())
	}
	return ntk, info, nil
}

func fileArg(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "-", nil
	case 1:
		return args[0], nil
	}
	return "", fmt.Errorf("%w: expected at most one file, got %v", cli.ErrUsage, args)
}

type StatsConfig struct {
	*MainConfig

	Stats *cli.Command
}

type SimConfig struct {
	*MainConfig
	N    int `cli:"name=n desc='number of 64 pattern words (default 1)'"`
	Seed int `cli:"name=seed desc='random seed'"`

	Sim *cli.Command
}

type AigConfig struct {
	*MainConfig
	Binary bool `cli:"name=binary aliases=b desc='write binary aiger'"`

	Aig *cli.Command
}
