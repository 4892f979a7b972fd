// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command lnet reads gtech netlists into logic networks and reports on
// them, simulates them or converts them to AIGER.
package main

import (
	"context"
	"log"

	"github.com/scott-cotton/cli"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lnet: ")
	cli.MainContext(context.Background(), MainCommand())
}
