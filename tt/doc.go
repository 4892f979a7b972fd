// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package tt provides dynamic truth tables and a cache which assigns
// stable integer handles, called literals, to Boolean functions.
//
// A truth table over n variables has 2^n bits; bit m holds the value of the
// function at the minterm m, where variable i is bit i of m.  The same type
// doubles as a vector of 2^n simulation patterns.
package tt
