// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "lnet").
		WithSynopsis("lnet [opts] command [opts] [file]").
		WithDescription("lnet reads gtech netlists into logic networks.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return lnetMain(cfg, cc, args)
		}).
		WithSubs(
			StatsCommand(cfg),
			SimCommand(cfg),
			AigCommand(cfg))
}

func lnetMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Config != "" {
		fc, err := readFileConfig(cfg.Config)
		if err != nil {
			return err
		}
		cfg.merge(fc)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func StatsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StatsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Stats, "stats").
		WithAliases("st").
		WithSynopsis("stats [file]").
		WithDescription("print the size, depth and gate kinds of a network").
		WithRun(func(cc *cli.Context, args []string) error {
			return stats(cfg, cc, args)
		})
}

func SimCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SimConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Sim, "sim").
		WithSynopsis("sim [-n words] [-seed s] [file]").
		WithDescription("simulate random patterns and print the outputs in hex").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sim(cfg, cc, args)
		})
}

func AigCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AigConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Aig, "aig").
		WithSynopsis("aig [-binary] [file]").
		WithDescription("write a network as an and-inverter graph in aiger format").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return writeAig(cfg, cc, args)
		})
}
