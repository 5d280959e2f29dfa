// Package main implements textcore, a command-line driver for the
// codepoint-level text operations in the text package.
package main

import (
	"fmt"
	"io"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/wygulmage/bytestring-text-core/text"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// newRootCmd builds the full command tree. Each call returns a fresh
// tree with independent flag state.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "textcore",
		Short: "Codepoint-level slicing over UTF-8 text",
		Long: `textcore runs codepoint-granularity text operations from the shell.

Every command takes its operand as a single argument, or reads it from
stdin when no argument is given. Input must be valid UTF-8; positions
and counts are in Unicode scalar values, not bytes.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLengthCmd(),
		newTakeCmd(),
		newDropCmd(),
		newSplitCmd(),
		newReverseCmd(),
		newFilterCmd(),
		newTrimCmd(),
		newHeadCmd(),
		newLastCmd(),
		newTailCmd(),
		newInitCmd(),
	)
	return root
}

// readInput returns the operand: the first argument when present,
// otherwise all of stdin.
func readInput(cmd *cobra.Command, args []string) (text.Text, error) {
	if len(args) > 0 {
		t, err := text.FromString(args[0])
		if err != nil {
			return text.Empty, fmt.Errorf("argument: %w", err)
		}
		return t, nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return text.Empty, fmt.Errorf("read stdin: %w", err)
	}
	t, err := text.FromBytes(data)
	if err != nil {
		return text.Empty, fmt.Errorf("stdin: %w", err)
	}
	return t, nil
}

// runeClasses maps the --class flag values to rune predicates.
var runeClasses = map[string]func(rune) bool{
	"letter": unicode.IsLetter,
	"digit":  unicode.IsDigit,
	"lower":  unicode.IsLower,
	"upper":  unicode.IsUpper,
	"space":  unicode.IsSpace,
	"punct":  unicode.IsPunct,
}

// classPredicate resolves a class name, optionally inverted.
func classPredicate(name string, invert bool) (func(rune) bool, error) {
	p, ok := runeClasses[name]
	if !ok {
		return nil, fmt.Errorf("unknown rune class %q", name)
	}
	if invert {
		return func(r rune) bool { return !p(r) }, nil
	}
	return p, nil
}
