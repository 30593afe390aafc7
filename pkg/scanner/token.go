/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"encoding/json"

	"github.com/dburkart/lualex/pkg/common/parse"
)

type TokenType int

const (
	TOK_INVALID TokenType = iota
	TOK_EOF

	TOK_IDENTIFIER
	TOK_NUMBER
	TOK_STRING

	// Operators
	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_SLASH
	TOK_SLASH_SLASH
	TOK_CARET
	TOK_PERCENT
	TOK_AMPERSAND
	TOK_TILDE
	TOK_PIPE
	TOK_SHIFT_R
	TOK_SHIFT_L
	TOK_DOT_DOT
	TOK_LESS
	TOK_LESS_EQ
	TOK_GREATER
	TOK_GREATER_EQ
	TOK_EQ_EQ
	TOK_NOT_EQ
	TOK_HASH

	// Punctuation
	TOK_SEMICOLON
	TOK_COLON
	TOK_COLON_COLON
	TOK_EQUAL
	TOK_COMMA
	TOK_DOT
	TOK_ELLIPSIS
	TOK_PAREN_L
	TOK_PAREN_R
	TOK_BRACKET_L
	TOK_BRACKET_L_L
	TOK_BRACKET_R
	TOK_BRACKET_R_R
	TOK_BRACE_L
	TOK_BRACE_R

	// Keywords
	TOK_AND
	TOK_OR
	TOK_NOT
	TOK_NIL
	TOK_FALSE
	TOK_TRUE
	TOK_FOR
	TOK_WHILE
	TOK_REPEAT
	TOK_UNTIL
	TOK_DO
	TOK_IF
	TOK_THEN
	TOK_ELSEIF
	TOK_ELSE
	TOK_END
	TOK_BREAK
	TOK_GOTO
	TOK_RETURN
	TOK_FUNCTION
	TOK_LOCAL
	TOK_IN
)

// Keywords maps every reserved word to its token type. The scanner consults
// it after matching an identifier; the REPL uses it to seed completion.
var Keywords = map[string]parse.TokenType{
	"and":      TOK_AND,
	"or":       TOK_OR,
	"not":      TOK_NOT,
	"nil":      TOK_NIL,
	"false":    TOK_FALSE,
	"true":     TOK_TRUE,
	"for":      TOK_FOR,
	"while":    TOK_WHILE,
	"repeat":   TOK_REPEAT,
	"until":    TOK_UNTIL,
	"do":       TOK_DO,
	"if":       TOK_IF,
	"then":     TOK_THEN,
	"elseif":   TOK_ELSEIF,
	"else":     TOK_ELSE,
	"end":      TOK_END,
	"break":    TOK_BREAK,
	"goto":     TOK_GOTO,
	"return":   TOK_RETURN,
	"function": TOK_FUNCTION,
	"local":    TOK_LOCAL,
	"in":       TOK_IN,
}

func (t TokenType) ToString() string {
	switch t {
	case TOK_INVALID:
		return "TOK_INVALID"
	case TOK_EOF:
		return "TOK_EOF"
	case TOK_IDENTIFIER:
		return "TOK_IDENTIFIER"
	case TOK_NUMBER:
		return "TOK_NUMBER"
	case TOK_STRING:
		return "TOK_STRING"
	case TOK_PLUS:
		return "TOK_PLUS"
	case TOK_MINUS:
		return "TOK_MINUS"
	case TOK_STAR:
		return "TOK_STAR"
	case TOK_SLASH:
		return "TOK_SLASH"
	case TOK_SLASH_SLASH:
		return "TOK_SLASH_SLASH"
	case TOK_CARET:
		return "TOK_CARET"
	case TOK_PERCENT:
		return "TOK_PERCENT"
	case TOK_AMPERSAND:
		return "TOK_AMPERSAND"
	case TOK_TILDE:
		return "TOK_TILDE"
	case TOK_PIPE:
		return "TOK_PIPE"
	case TOK_SHIFT_R:
		return "TOK_SHIFT_R"
	case TOK_SHIFT_L:
		return "TOK_SHIFT_L"
	case TOK_DOT_DOT:
		return "TOK_DOT_DOT"
	case TOK_LESS:
		return "TOK_LESS"
	case TOK_LESS_EQ:
		return "TOK_LESS_EQ"
	case TOK_GREATER:
		return "TOK_GREATER"
	case TOK_GREATER_EQ:
		return "TOK_GREATER_EQ"
	case TOK_EQ_EQ:
		return "TOK_EQ_EQ"
	case TOK_NOT_EQ:
		return "TOK_NOT_EQ"
	case TOK_HASH:
		return "TOK_HASH"
	case TOK_SEMICOLON:
		return "TOK_SEMICOLON"
	case TOK_COLON:
		return "TOK_COLON"
	case TOK_COLON_COLON:
		return "TOK_COLON_COLON"
	case TOK_EQUAL:
		return "TOK_EQUAL"
	case TOK_COMMA:
		return "TOK_COMMA"
	case TOK_DOT:
		return "TOK_DOT"
	case TOK_ELLIPSIS:
		return "TOK_ELLIPSIS"
	case TOK_PAREN_L:
		return "TOK_PAREN_L"
	case TOK_PAREN_R:
		return "TOK_PAREN_R"
	case TOK_BRACKET_L:
		return "TOK_BRACKET_L"
	case TOK_BRACKET_L_L:
		return "TOK_BRACKET_L_L"
	case TOK_BRACKET_R:
		return "TOK_BRACKET_R"
	case TOK_BRACKET_R_R:
		return "TOK_BRACKET_R_R"
	case TOK_BRACE_L:
		return "TOK_BRACE_L"
	case TOK_BRACE_R:
		return "TOK_BRACE_R"
	case TOK_AND:
		return "TOK_AND"
	case TOK_OR:
		return "TOK_OR"
	case TOK_NOT:
		return "TOK_NOT"
	case TOK_NIL:
		return "TOK_NIL"
	case TOK_FALSE:
		return "TOK_FALSE"
	case TOK_TRUE:
		return "TOK_TRUE"
	case TOK_FOR:
		return "TOK_FOR"
	case TOK_WHILE:
		return "TOK_WHILE"
	case TOK_REPEAT:
		return "TOK_REPEAT"
	case TOK_UNTIL:
		return "TOK_UNTIL"
	case TOK_DO:
		return "TOK_DO"
	case TOK_IF:
		return "TOK_IF"
	case TOK_THEN:
		return "TOK_THEN"
	case TOK_ELSEIF:
		return "TOK_ELSEIF"
	case TOK_ELSE:
		return "TOK_ELSE"
	case TOK_END:
		return "TOK_END"
	case TOK_BREAK:
		return "TOK_BREAK"
	case TOK_GOTO:
		return "TOK_GOTO"
	case TOK_RETURN:
		return "TOK_RETURN"
	case TOK_FUNCTION:
		return "TOK_FUNCTION"
	case TOK_LOCAL:
		return "TOK_LOCAL"
	case TOK_IN:
		return "TOK_IN"
	}
	return "TOK_UNKNOWN"
}

// MarshalJSON renders token types by name so serialized streams stay readable
// and stable across enum reordering.
func (t TokenType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.ToString())
}
