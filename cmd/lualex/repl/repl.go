/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"os"
	"sort"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	output "github.com/dburkart/lualex/pkg/repl"
	"github.com/dburkart/lualex/pkg/scanner"
)

var log zerolog.Logger

var Command = &cobra.Command{
	Use:   "repl",
	Short: "Interactive prompt that scans Lua source one line at a time",

	Run: func(cmd *cobra.Command, args []string) {
		readlinePrompt(viper.GetString("lualex.repl.output"))
	},
}

func init() {
	log = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).
		With().
		Timestamp().
		Caller().
		Logger()

	// Flags for this command
	Command.Flags().StringP("output", "o", "text", "Output format of the token stream [csv, json, text]")

	// Bind flags to viper
	viper.BindPFlag("lualex.repl.output", Command.Flags().Lookup("output"))
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func makeKeywordItems() []readline.PrefixCompleterInterface {
	words := make([]string, 0, len(scanner.Keywords))
	for word := range scanner.Keywords {
		words = append(words, word)
	}
	sort.Strings(words)

	ret := []readline.PrefixCompleterInterface{}
	for i := range words {
		ret = append(ret, readline.PcItem(words[i]))
	}
	return ret
}

func readlinePrompt(outputFormat string) {
	// Configure the completer
	completer := readline.NewPrefixCompleter(makeKeywordItems()...)

	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31m>\033[0m ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	session := uuid.New()
	log = log.With().Str("session", session.String()).Logger()
	log.Info().Msg("starting scan session")

	// Configure output writer
	writer := output.NewOutputWriter(os.Stdout, outputFormat)

	// Handle input
	for {
		ln := rl.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			break
		}
		line := strings.TrimSpace(ln.Line)

		if line == "" {
			continue
		}
		if strings.ToUpper(line) == "EXIT" {
			os.Exit(0)
		}

		// One bad lexeme should not end the session, so each line is
		// scanned in recovery mode with the session logger as the sink.
		s := scanner.Scanner{
			Input:    line,
			Recovery: true,
			Sink: func(diagnostic string) {
				log.Error().Msg(diagnostic)
			},
		}

		tokens := output.TokenList{}
		for {
			tok, _ := s.Emit()
			tokens = append(tokens, tok)
			if tok.Type == scanner.TOK_EOF {
				break
			}
		}

		writer.Write(tokens)
	}
}
