package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xiam/binspec/internal/ctxlog"
	"github.com/xiam/binspec/lexer"
)

var tokensAll bool

var tokensCmd = &cobra.Command{
	Use:   "tokens [spec]",
	Short: "Dump the lexical tokens of a specification",
	Long: `Tokens prints the token stream a specification lexes into, one token
per line with its type, text and position. Useful when a specification
is rejected and the reported group or bin ordinal is not enough.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	tokensCmd.Flags().BoolVar(&tokensAll, "all", false, "include separator and EOF tokens")
}

func runTokens(cmd *cobra.Command, args []string) error {
	spec, err := resolveSpec(cmd, args)
	if err != nil {
		return err
	}

	tokens, err := lexer.Tokenize([]byte(spec))
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	ctxlog.FromContext(cmd.Context()).Debug("specification tokenized", "tokens", len(tokens))

	for _, tok := range tokens {
		if !tokensAll && (tok.Is(lexer.TokenWhitespace) || tok.Is(lexer.TokenNewLine) || tok.Is(lexer.TokenEOF)) {
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok.String())
	}

	return nil
}
