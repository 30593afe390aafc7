/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scan

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dburkart/lualex/pkg/common/parse"
	"github.com/dburkart/lualex/pkg/repl"
	"github.com/dburkart/lualex/pkg/scanner"
)

var Command = &cobra.Command{
	Use:   "scan [file]",
	Short: "Print the token stream of a Lua source file",
	Args:  cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)

		source, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatal().Err(errors.Wrap(err, "unable to read source file")).Send()
		}

		log.Debug().
			Str("file", args[0]).
			Str("size", humanize.Bytes(uint64(len(source)))).
			Msg("scanning")

		s := scanner.Scanner{Input: string(source)}

		tokens := repl.TokenList{}
		for {
			tok, err := s.Emit()
			if err != nil {
				if lexErr, ok := err.(*parse.LexError); ok {
					fmt.Fprint(os.Stderr, lexErr.FormatError(s.Input))
				}
				log.Fatal().Err(err).Msg("scan failed")
			}

			tokens = append(tokens, tok)
			if tok.Type == scanner.TOK_EOF {
				break
			}
		}

		writer := repl.NewOutputWriter(os.Stdout, viper.GetString("lualex.scan.output"))
		writer.Write(tokens)
	},
}

func init() {
	// Flags for this command
	Command.Flags().StringP("output", "o", "text", "Output format of the token stream [csv, json, text]")

	// Bind flags to viper
	viper.BindPFlag("lualex.scan.output", Command.Flags().Lookup("output"))
}
