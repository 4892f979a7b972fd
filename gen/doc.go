// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen contains generators of random netlists and networks.
//
// Netlists are written in the gtech dialect, optionally with statements
// in random order so that readers must defer them.  Networks are built
// through inter.Builder.
package gen
