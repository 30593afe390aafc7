/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dburkart/lualex/pkg/common/parse"
)

// Scanner produces Lua tokens on demand from a fixed input string. Each
// instance walks its input exactly once; scanning the same text again
// requires a fresh Scanner.
//
// With Recovery set, lexical errors are handed to Sink and scanning resumes
// at the next whitespace boundary instead of ending the token stream.
type Scanner struct {
	Input    string
	Start    int
	Pos      int
	Line     int
	Column   int
	Recovery bool
	Sink     func(string)

	startLine   int
	startColumn int
}

// MatchIdentifier returns the length of the next token, assuming it is an
// identifier or keyword.
//
// Grammar:
//
//	identifier      = (ALPHA / "_") *(ALPHA / DIGIT / "_")
func (s *Scanner) MatchIdentifier() int {
	i := s.Pos
	r, width := utf8.DecodeRuneInString(s.Input[i:])
	size := 0

	for unicode.IsDigit(r) || unicode.IsLetter(r) || r == '_' {
		size += width
		i += width
		r, width = utf8.DecodeRuneInString(s.Input[i:])
	}

	return size
}

// MatchNumber returns the length of the next token, assuming it is a decimal
// number. An exponent marker with no digits after it is included in the
// match, so the strconv parse downstream rejects the lexeme.
//
// Grammar:
//
//	number          = 1*DIGIT ["." 1*DIGIT] [("e" / "E") ["+" / "-"] 1*DIGIT]
func (s *Scanner) MatchNumber() int {
	i := s.Pos
	r, width := utf8.DecodeRuneInString(s.Input[i:])
	size := 0

	digits := func() {
		for unicode.IsDigit(r) {
			size += width
			i += width
			r, width = utf8.DecodeRuneInString(s.Input[i:])
		}
	}

	digits()

	if r == '.' {
		next, _ := utf8.DecodeRuneInString(s.Input[i+width:])
		if unicode.IsDigit(next) {
			size += width
			i += width
			r, width = utf8.DecodeRuneInString(s.Input[i:])
			digits()
		}
	}

	if r == 'e' || r == 'E' {
		size += width
		i += width
		r, width = utf8.DecodeRuneInString(s.Input[i:])
		if r == '+' || r == '-' {
			size += width
			i += width
			r, width = utf8.DecodeRuneInString(s.Input[i:])
		}
		digits()
	}

	return size
}

// MatchHexNumber returns the length of the next token, assuming it is a
// hexadecimal number. The "0x" / "0X" prefix is included in the length.
//
// Grammar:
//
//	hex-number      = "0" ("x" / "X") 1*HEXDIG
func (s *Scanner) MatchHexNumber() int {
	i := s.Pos + 2
	size := 2
	r, width := utf8.DecodeRuneInString(s.Input[i:])

	for isHexDigit(r) {
		size += width
		i += width
		r, width = utf8.DecodeRuneInString(s.Input[i:])
	}

	return size
}

// MatchString returns the length of the next token, assuming it is a short
// string, including both quote runes. A zero length means the string never
// terminates. A backslash shields the rune after it from closing the string;
// no further escape processing happens at this level.
func (s *Scanner) MatchString() int {
	quote, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
	i := s.Pos + width
	escaped := false

	for i < len(s.Input) {
		r, width := utf8.DecodeRuneInString(s.Input[i:])
		i += width

		if escaped {
			escaped = false
			continue
		}

		switch r {
		case '\\':
			escaped = true
		case quote:
			return i - s.Pos
		}
	}

	return 0
}

// longBracketLevel returns the level (the count of "=") of a long bracket
// opener at the given offset, or -1 if no opener starts there.
func (s *Scanner) longBracketLevel(at int) int {
	if at >= len(s.Input) || s.Input[at] != '[' {
		return -1
	}

	level := 0
	for i := at + 1; i < len(s.Input); i++ {
		switch s.Input[i] {
		case '=':
			level++
		case '[':
			return level
		default:
			return -1
		}
	}

	return -1
}

// scanLongBracket consumes a long-bracket body starting at the opening "[".
// The returned string is everything between the opener and the first close
// whose "=" run matches level exactly.
func (s *Scanner) scanLongBracket(level int) (string, error) {
	s.advance(level + 2)
	open := s.Pos

	for s.Pos < len(s.Input) {
		if s.Input[s.Pos] != ']' {
			_, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
			s.advance(width)
			continue
		}

		candidate := s.Pos
		s.advance(1)
		run := 0
		for s.Pos < len(s.Input) && s.Input[s.Pos] == '=' {
			s.advance(1)
			run++
		}
		if run == level && s.Pos < len(s.Input) && s.Input[s.Pos] == ']' {
			s.advance(1)
			return s.Input[open:candidate], nil
		}
		// The candidate is broken. Whatever broke it is still unconsumed,
		// so a "]" here starts a new candidate on the next pass.
	}

	return "", parse.NewLexError(parse.Location{Line: s.Line, Column: s.Column}, "expected closing bracket")
}

// skipComment consumes a comment, assuming the cursor sits on "--". Long
// comments follow the same close rule as long strings; short comments run to
// the end of the line.
func (s *Scanner) skipComment() error {
	s.advance(2)

	if level := s.longBracketLevel(s.Pos); level >= 0 {
		_, err := s.scanLongBracket(level)
		return err
	}

	for s.Pos < len(s.Input) && s.Input[s.Pos] != '\n' {
		_, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
		s.advance(width)
	}

	return nil
}

// Emit the next Token found on Scanner.Input.
func (s *Scanner) Emit() (parse.Token, error) {
	var t parse.Token

	if s.Line == 0 {
		s.Line = 1
		s.Column = 1
	}

	for {
		if s.Pos >= len(s.Input) {
			t.Type = TOK_EOF
			t.Location = parse.Location{Line: s.Line, Column: s.Column}
			return t, nil
		}

		r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
		s.Start = s.Pos
		s.startLine = s.Line
		s.startColumn = s.Column
		keyword := false

		switch {
		case unicode.IsSpace(r):
			s.advance(width)
			continue

		case r == '-':
			if strings.HasPrefix(s.Input[s.Pos:], "--") {
				if err := s.skipComment(); err != nil {
					if s.Recovery {
						s.recover(err)
						continue
					}
					return t, err
				}
				continue
			}
			t.Type = TOK_MINUS
			s.advance(width)

		case r == '+':
			t.Type = TOK_PLUS
			s.advance(width)
		case r == '*':
			t.Type = TOK_STAR
			s.advance(width)
		case r == '^':
			t.Type = TOK_CARET
			s.advance(width)
		case r == '%':
			t.Type = TOK_PERCENT
			s.advance(width)
		case r == '&':
			t.Type = TOK_AMPERSAND
			s.advance(width)
		case r == '|':
			t.Type = TOK_PIPE
			s.advance(width)
		case r == '#':
			t.Type = TOK_HASH
			s.advance(width)
		case r == ';':
			t.Type = TOK_SEMICOLON
			s.advance(width)
		case r == ',':
			t.Type = TOK_COMMA
			s.advance(width)
		case r == '(':
			t.Type = TOK_PAREN_L
			s.advance(width)
		case r == ')':
			t.Type = TOK_PAREN_R
			s.advance(width)
		case r == '{':
			t.Type = TOK_BRACE_L
			s.advance(width)
		case r == '}':
			t.Type = TOK_BRACE_R
			s.advance(width)
		case r == ']':
			t.Type = TOK_BRACKET_R
			s.advance(width)

		case r == '/':
			if strings.HasPrefix(s.Input[s.Pos:], "//") {
				t.Type = TOK_SLASH_SLASH
				s.advance(len("//"))
				break
			}
			t.Type = TOK_SLASH
			s.advance(width)
		case r == '~':
			if strings.HasPrefix(s.Input[s.Pos:], "~=") {
				t.Type = TOK_NOT_EQ
				s.advance(len("~="))
				break
			}
			t.Type = TOK_TILDE
			s.advance(width)
		case r == '=':
			if strings.HasPrefix(s.Input[s.Pos:], "==") {
				t.Type = TOK_EQ_EQ
				s.advance(len("=="))
				break
			}
			t.Type = TOK_EQUAL
			s.advance(width)
		case r == ':':
			if strings.HasPrefix(s.Input[s.Pos:], "::") {
				t.Type = TOK_COLON_COLON
				s.advance(len("::"))
				break
			}
			t.Type = TOK_COLON
			s.advance(width)
		case r == '<':
			if strings.HasPrefix(s.Input[s.Pos:], "<<") {
				t.Type = TOK_SHIFT_L
				s.advance(len("<<"))
				break
			}
			if strings.HasPrefix(s.Input[s.Pos:], "<=") {
				t.Type = TOK_LESS_EQ
				s.advance(len("<="))
				break
			}
			t.Type = TOK_LESS
			s.advance(width)
		case r == '>':
			if strings.HasPrefix(s.Input[s.Pos:], ">>") {
				t.Type = TOK_SHIFT_R
				s.advance(len(">>"))
				break
			}
			if strings.HasPrefix(s.Input[s.Pos:], ">=") {
				t.Type = TOK_GREATER_EQ
				s.advance(len(">="))
				break
			}
			t.Type = TOK_GREATER
			s.advance(width)
		case r == '.':
			if strings.HasPrefix(s.Input[s.Pos:], "...") {
				t.Type = TOK_ELLIPSIS
				s.advance(len("..."))
				break
			}
			if strings.HasPrefix(s.Input[s.Pos:], "..") {
				t.Type = TOK_DOT_DOT
				s.advance(len(".."))
				break
			}
			t.Type = TOK_DOT
			s.advance(width)

		case r == '[':
			level := s.longBracketLevel(s.Pos)
			if level < 0 {
				t.Type = TOK_BRACKET_L
				s.advance(width)
				break
			}
			content, err := s.scanLongBracket(level)
			if err != nil {
				if s.Recovery {
					s.recover(err)
					continue
				}
				return t, err
			}
			t.Type = TOK_STRING
			t.Literal = content

		case r == '\'' || r == '"':
			skip := s.MatchString()
			if skip == 0 {
				err := parse.NewLexError(parse.Location{Line: s.startLine, Column: s.startColumn}, "unterminated string")
				if s.Recovery {
					s.recover(err)
					continue
				}
				return t, err
			}
			t.Type = TOK_STRING
			t.Literal = s.Input[s.Pos+1 : s.Pos+skip-1]
			s.advance(skip)

		case unicode.IsDigit(r):
			var literal any
			var skip int

			if strings.HasPrefix(s.Input[s.Pos:], "0x") || strings.HasPrefix(s.Input[s.Pos:], "0X") {
				skip = s.MatchHexNumber()
				value, err := strconv.ParseInt(s.Input[s.Pos+2:s.Pos+skip], 16, 64)
				if err == nil {
					literal = value
				}
			} else {
				skip = s.MatchNumber()
				value, err := strconv.ParseFloat(s.Input[s.Pos:s.Pos+skip], 64)
				if err == nil {
					literal = value
				}
			}

			if literal == nil {
				err := parse.NewLexError(parse.Location{Line: s.startLine, Column: s.startColumn},
					fmt.Sprintf("malformed number '%s'", s.Input[s.Pos:s.Pos+skip]))
				if s.Recovery {
					s.recover(err)
					continue
				}
				return t, err
			}

			t.Type = TOK_NUMBER
			t.Literal = literal
			s.advance(skip)

		case unicode.IsLetter(r) || r == '_':
			skip := s.MatchIdentifier()
			word := s.Input[s.Pos : s.Pos+skip]
			s.advance(skip)

			if kind, ok := Keywords[word]; ok {
				t.Type = kind.(TokenType)
				keyword = true
			} else {
				t.Type = TOK_IDENTIFIER
			}

		default:
			err := parse.NewLexError(parse.Location{Line: s.startLine, Column: s.startColumn},
				fmt.Sprintf("unexpected character '%c'", r))
			if s.Recovery {
				s.recover(err)
				continue
			}
			return t, err
		}

		// Keyword tokens are kind-only; everything else keeps its exact
		// source substring.
		if !keyword {
			t.Lexeme = s.Input[s.Start:s.Pos]
		}
		t.Location = parse.Location{Line: s.startLine, Column: s.startColumn}

		return t, nil
	}
}

// advance consumes n bytes of input, keeping Line and Column in step with
// every rune passed over.
func (s *Scanner) advance(n int) {
	end := s.Pos + n
	for s.Pos < end {
		r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
		if r == '\n' {
			s.Line++
			s.Column = 1
		} else {
			s.Column++
		}
		s.Pos += width
	}
}

// recover reports err on the diagnostic sink and skips forward to the next
// whitespace boundary. Resynchronization is best-effort: the skipped region
// produces no tokens and the next match may not start at a sane grammatical
// boundary.
func (s *Scanner) recover(err error) {
	if s.Sink != nil {
		s.Sink(err.Error())
	}
	s.advance(s.SkipToBoundary(unicode.IsSpace))
}

type boundaryFunc func(rune) bool

// SkipToBoundary returns the number of bytes until the next boundary rune.
// This is useful for skipping over invalid tokens.
func (s *Scanner) SkipToBoundary(boundary boundaryFunc) int {
	r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
	size := 0

	for !boundary(r) && s.Pos+size < len(s.Input) {
		size += width
		r, width = utf8.DecodeRuneInString(s.Input[s.Pos+size:])
	}

	return size
}

func isHexDigit(r rune) bool {
	return unicode.IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
