/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"fmt"
	"strings"
)

type LexError struct {
	Location Location
	Message  string
}

func NewLexError(l Location, m string) *LexError {
	return &LexError{Location: l, Message: m}
}

func (e *LexError) Error() string {
	return fmt.Sprintf("At %d:%d: %s", e.Location.Line, e.Location.Column, e.Message)
}

// FormatError renders the offending source line with a caret pointing at the
// triggering column.
func (e *LexError) FormatError(input string) string {
	lines := strings.Split(input, "\n")

	errorString := "Lexical error found in input:\n"
	if e.Location.Line-1 < len(lines) {
		errorString += lines[e.Location.Line-1] + "\n"
		errorString += fmt.Sprintf("%s^ ", strings.Repeat(" ", e.Location.Column-1))
	}
	errorString += fmt.Sprintf("%s\n", e.Message)
	return errorString
}
