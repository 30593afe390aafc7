/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dburkart/lualex/pkg/common/parse"
	"github.com/olekukonko/tablewriter"
)

type Printable interface {
	Headers() []string
	Values() [][]string
}

type OutputWriter interface {
	Write(v Printable)
}

type CSVWriter struct {
	w io.Writer
}

type TextWriter struct {
	w io.Writer
}

type JSONWriter struct {
	w io.Writer
}

func NewOutputWriter(w io.Writer, t string) OutputWriter {
	switch t {
	case "csv":
		return CSVWriter{
			w,
		}
	case "json":
		return JSONWriter{
			w,
		}
	}
	return TextWriter{
		w,
	}
}

func (w CSVWriter) Write(v Printable) {
	wtr := csv.NewWriter(w.w)
	wtr.Write(v.Headers())
	wtr.WriteAll(v.Values())
}

func (w TextWriter) Write(v Printable) {
	table := tablewriter.NewWriter(w.w)
	table.SetHeader(v.Headers())
	table.AppendBulk(v.Values())
	table.Render()
}

func (w JSONWriter) Write(v Printable) {
	enc := json.NewEncoder(w.w)
	enc.Encode(v)
}

// TokenList adapts a scanned token stream to the output writers.
type TokenList []parse.Token

func (l TokenList) Headers() []string {
	return []string{"Line", "Column", "Type", "Lexeme", "Literal"}
}

func (l TokenList) Values() [][]string {
	rows := make([][]string, 0, len(l))

	for _, t := range l {
		literal := ""
		if t.Literal != nil {
			literal = fmt.Sprint(t.Literal)
		}

		rows = append(rows, []string{
			strconv.Itoa(t.Location.Line),
			strconv.Itoa(t.Location.Column),
			t.Type.ToString(),
			t.Lexeme,
			literal,
		})
	}

	return rows
}
