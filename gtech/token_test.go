// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gtech_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/go-air/lnet/gtech"
)

func lex(t *testing.T, src string) ([]gtech.Token, error) {
	t.Helper()
	lx := gtech.NewLexer(strings.NewReader(src))
	var res []gtech.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return res, err
		}
		if tok.Kind == gtech.EOF {
			return res, nil
		}
		res = append(res, tok)
	}
}

func TestLexer(t *testing.T) {
	src := "module m(a, \\b[0] );\n// note\nassign y = ~a & 1'b1; /* x\ny */ 4'hA\n"
	toks, err := lex(t, src)
	if err != nil {
		t.Fatal(err)
	}
	exp := []gtech.Token{
		{Kind: gtech.Ident, Text: "module", Line: 1},
		{Kind: gtech.Ident, Text: "m", Line: 1},
		{Kind: gtech.Punct, Text: "(", Line: 1},
		{Kind: gtech.Ident, Text: "a", Line: 1},
		{Kind: gtech.Punct, Text: ",", Line: 1},
		{Kind: gtech.Ident, Text: "\\b[0]", Line: 1},
		{Kind: gtech.Punct, Text: ")", Line: 1},
		{Kind: gtech.Punct, Text: ";", Line: 1},
		{Kind: gtech.Comment, Text: "note", Line: 2},
		{Kind: gtech.Ident, Text: "assign", Line: 3},
		{Kind: gtech.Ident, Text: "y", Line: 3},
		{Kind: gtech.Punct, Text: "=", Line: 3},
		{Kind: gtech.Punct, Text: "~", Line: 3},
		{Kind: gtech.Ident, Text: "a", Line: 3},
		{Kind: gtech.Punct, Text: "&", Line: 3},
		{Kind: gtech.Number, Text: "1'b1", Line: 3},
		{Kind: gtech.Punct, Text: ";", Line: 3},
		{Kind: gtech.Comment, Text: "x\ny", Line: 3},
		{Kind: gtech.Number, Text: "4'hA", Line: 4}}
	if d := cmp.Diff(exp, toks); d != "" {
		t.Errorf("tokens (-want +got):\n%s", d)
	}
}

func TestLexerUnread(t *testing.T) {
	lx := gtech.NewLexer(strings.NewReader("a b"))
	a, _ := lx.Next()
	lx.Unread()
	a2, _ := lx.Next()
	if a != a2 {
		t.Errorf("unread: got %v, want %v", a2, a)
	}
	b, _ := lx.Next()
	if b.Text != "b" {
		t.Errorf("got %q after unread, want b", b.Text)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("double unread did not panic")
		}
	}()
	lx.Unread()
	lx.Unread()
}

func TestLexerDollar(t *testing.T) {
	toks, err := lex(t, "$x a$1 _$")
	if err != nil {
		t.Fatal(err)
	}
	exp := []gtech.Token{
		{Kind: gtech.Ident, Text: "$x", Line: 1},
		{Kind: gtech.Ident, Text: "a$1", Line: 1},
		{Kind: gtech.Ident, Text: "_$", Line: 1}}
	if d := cmp.Diff(exp, toks); d != "" {
		t.Errorf("tokens (-want +got):\n%s", d)
	}
}

func TestLexerErrors(t *testing.T) {
	for _, tc := range []struct {
		src string
		err error
	}{
		{"a @ b", gtech.ErrUnexpectedChar},
		{"a /* b", gtech.ErrUnterminatedComment},
		{"4'q1", gtech.ErrMalformedNumber},
		{"1'b", gtech.ErrMalformedNumber},
		{"\\ ", gtech.ErrEmptyEscapedIdent},
	} {
		_, err := lex(t, tc.src)
		if errors.Cause(err) != tc.err {
			t.Errorf("%q: got %v, want %v", tc.src, err, tc.err)
		}
	}
}
