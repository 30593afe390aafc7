/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"bytes"
	"testing"

	"github.com/dburkart/lualex/pkg/scanner"
)

func scanAll(t *testing.T, input string) TokenList {
	t.Helper()

	s := scanner.Scanner{Input: input}

	tokens := TokenList{}
	for {
		tok, err := s.Emit()
		if err != nil {
			t.Fatal(err)
		}
		tokens = append(tokens, tok)
		if tok.Type == scanner.TOK_EOF {
			break
		}
	}
	return tokens
}

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer

	NewOutputWriter(&buf, "csv").Write(scanAll(t, "local x"))

	want := "Line,Column,Type,Lexeme,Literal\n" +
		"1,1,TOK_LOCAL,,\n" +
		"1,7,TOK_IDENTIFIER,x,\n" +
		"1,8,TOK_EOF,,\n"

	if buf.String() != want {
		t.Errorf("wanted:\n%s\ngot:\n%s", want, buf.String())
	}
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer

	NewOutputWriter(&buf, "json").Write(scanAll(t, "x"))

	want := `[{"type":"TOK_IDENTIFIER","lexeme":"x","location":{"line":1,"column":1}},` +
		`{"type":"TOK_EOF","location":{"line":1,"column":2}}]` + "\n"

	if buf.String() != want {
		t.Errorf("wanted:\n%s\ngot:\n%s", want, buf.String())
	}
}

func TestTokenListValues(t *testing.T) {
	rows := scanAll(t, `v = 0x10`).Values()

	want := [][]string{
		{"1", "1", "TOK_IDENTIFIER", "v", ""},
		{"1", "3", "TOK_EQUAL", "=", ""},
		{"1", "5", "TOK_NUMBER", "0x10", "16"},
		{"1", "9", "TOK_EOF", "", ""},
	}

	if len(rows) != len(want) {
		t.Fatalf("wanted %d rows, got %d", len(want), len(rows))
	}

	for i := range want {
		for j := range want[i] {
			if rows[i][j] != want[i][j] {
				t.Errorf("row %d column %d: wanted %q, got %q", i, j, want[i][j], rows[i][j])
			}
		}
	}
}
