// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package tt

import (
	"fmt"
	"math/bits"
	"strings"
)

// MaxVars is the largest number of variables of a table.
const MaxVars = 24

// Type T is a truth table over a number of variables.
type T struct {
	n  int
	ws []uint64
}

var projections = [6]uint64{
	0xaaaaaaaaaaaaaaaa,
	0xcccccccccccccccc,
	0xf0f0f0f0f0f0f0f0,
	0xff00ff00ff00ff00,
	0xffff0000ffff0000,
	0xffffffff00000000}

func nWords(n int) int {
	if n <= 6 {
		return 1
	}
	return 1 << uint(n-6)
}

func mask(n int) uint64 {
	if n >= 6 {
		return ^uint64(0)
	}
	return (uint64(1) << (uint(1) << uint(n))) - 1
}

// New creates a constant 0 table over n variables.
func New(n int) T {
	if n < 0 || n > MaxVars {
		panic(fmt.Sprintf("tt: invalid number of variables %d", n))
	}
	return T{n: n, ws: make([]uint64, nWords(n))}
}

// FromWord creates a table over n <= 6 variables from the low
// bits of w.
func FromWord(n int, w uint64) T {
	if n > 6 {
		panic("tt: FromWord with more than 6 variables")
	}
	t := New(n)
	t.ws[0] = w & mask(n)
	return t
}

// FromWords creates a table over n variables from ws, which must
// contain enough words.
func FromWords(n int, ws []uint64) T {
	t := New(n)
	copy(t.ws, ws)
	t.ws[0] &= mask(n)
	return t
}

// FromFunc creates a table over n variables whose bit m is f(m).
func FromFunc(n int, f func(m int) bool) T {
	t := New(n)
	for m := 0; m < t.Bits(); m++ {
		if f(m) {
			t.SetBit(m, true)
		}
	}
	return t
}

// Nth creates the projection onto variable i over n variables.
func Nth(n, i int) T {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("tt: variable %d out of range for %d vars", i, n))
	}
	t := New(n)
	if i < 6 {
		for j := range t.ws {
			t.ws[j] = projections[i] & mask(n)
		}
		return t
	}
	for j := range t.ws {
		if (j>>uint(i-6))&1 == 1 {
			t.ws[j] = ^uint64(0)
		}
	}
	return t
}

// Const creates the constant table with value v over n variables.
func Const(n int, v bool) T {
	t := New(n)
	if v {
		return t.Not()
	}
	return t
}

// Vars returns the number of variables of t.
func (t T) Vars() int {
	return t.n
}

// Bits returns the number of bits of t.
func (t T) Bits() int {
	return 1 << uint(t.n)
}

// Bit returns bit m of t.
func (t T) Bit(m int) bool {
	return (t.ws[m>>6]>>uint(m&63))&1 == 1
}

// SetBit sets bit m of t to v.
func (t *T) SetBit(m int, v bool) {
	b := uint64(1) << uint(m&63)
	if v {
		t.ws[m>>6] |= b
	} else {
		t.ws[m>>6] &^= b
	}
}

// Word returns the i'th 64 bit word of t.
func (t T) Word(i int) uint64 {
	return t.ws[i]
}

// Words returns the words of t.  The result should not be modified.
func (t T) Words() []uint64 {
	return t.ws
}

// Clone returns a copy of t which shares no memory with t.
func (t T) Clone() T {
	ws := make([]uint64, len(t.ws))
	copy(ws, t.ws)
	return T{n: t.n, ws: ws}
}

// Not returns the complement of t.
func (t T) Not() T {
	u := T{n: t.n, ws: make([]uint64, len(t.ws))}
	m := mask(t.n)
	for i, w := range t.ws {
		u.ws[i] = ^w & m
	}
	return u
}

func binop(a, b T, f func(x, y uint64) uint64) T {
	if a.n != b.n {
		panic(fmt.Sprintf("tt: variable mismatch %d != %d", a.n, b.n))
	}
	u := T{n: a.n, ws: make([]uint64, len(a.ws))}
	for i := range a.ws {
		u.ws[i] = f(a.ws[i], b.ws[i])
	}
	return u
}

// And returns the conjunction of a and b, which must have the same
// number of variables.
func And(a, b T) T {
	return binop(a, b, func(x, y uint64) uint64 { return x & y })
}

// Or returns the disjunction of a and b.
func Or(a, b T) T {
	return binop(a, b, func(x, y uint64) uint64 { return x | y })
}

// Xor returns the exclusive or of a and b.
func Xor(a, b T) T {
	return binop(a, b, func(x, y uint64) uint64 { return x ^ y })
}

// Equal returns whether t and u have the same variables and bits.
func (t T) Equal(u T) bool {
	if t.n != u.n || len(t.ws) != len(u.ws) {
		return false
	}
	for i, w := range t.ws {
		if u.ws[i] != w {
			return false
		}
	}
	return true
}

// IsConst0 returns whether t is constant 0.
func (t T) IsConst0() bool {
	for _, w := range t.ws {
		if w != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of bits of t which are set.
func (t T) Count() int {
	c := 0
	for _, w := range t.ws {
		c += bits.OnesCount64(w)
	}
	return c
}

// Hex returns the hexadecimal representation of t, most significant
// bit first.
func (t T) Hex() string {
	digits := t.Bits() / 4
	if digits == 0 {
		digits = 1
	}
	var sb strings.Builder
	for i := len(t.ws) - 1; i >= 0; i-- {
		d := digits
		if d > 16 {
			d = 16
		}
		fmt.Fprintf(&sb, "%0*x", d, t.ws[i])
	}
	return sb.String()
}

func (t T) String() string {
	return fmt.Sprintf("%d:%s", t.n, t.Hex())
}

func (t T) key() string {
	var sb strings.Builder
	sb.Grow(1 + 8*len(t.ws))
	sb.WriteByte(byte(t.n))
	for _, w := range t.ws {
		for j := 0; j < 8; j++ {
			sb.WriteByte(byte(w >> uint(8*j)))
		}
	}
	return sb.String()
}
