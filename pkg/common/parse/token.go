/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

type TokenType interface {
	ToString() string
}

// Location is the 1-based position of a token's first character.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type Token struct {
	Type     TokenType `json:"type"`
	Lexeme   string    `json:"lexeme,omitempty"`
	Literal  any       `json:"literal,omitempty"`
	Location Location  `json:"location"`
}
