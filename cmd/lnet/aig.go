// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"github.com/scott-cotton/cli"

	"github.com/go-air/lnet/logic/aig"
)

func writeAig(cfg *AigConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Aig.Parse(cc, args)
	if err != nil {
		return err
	}
	file, err := fileArg(args)
	if err != nil {
		return err
	}
	ntk, _, err := cfg.read(cc, file)
	if err != nil {
		return err
	}
	return aig.WriteAiger(cc.Out, ntk, cfg.Binary)
}
