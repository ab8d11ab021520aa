// Command charscan applies character-class operations to text from the
// command line or stdin.
//
// The character class is selected with one of --pattern, --chars or
// --class:
//
//	charscan count --class digit "a1b22c333"
//	charscan collapse --class whitespace -r "_" "a   b    c"
//	echo "  hello  " | charscan trim --class whitespace
//	charscan retain --pattern "a-z" "Hello World"
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coregx/charmatch"
)

// Matcher selection flags, shared by every subcommand.
var (
	flagPattern string // character-class pattern, e.g. "a-z0-9_"
	flagChars   string // explicit character set
	flagClass   string // named class: digit, letter, whitespace, ...
)

var rootCmd = &cobra.Command{
	Use:           "charscan",
	Short:         "Scan, trim and rewrite text by character class",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagPattern, "pattern", "p", "", `character-class pattern, e.g. "a-zA-Z0-9_" or "^0-9"`)
	pf.StringVarP(&flagChars, "chars", "c", "", "explicit set of characters to match")
	pf.StringVar(&flagClass, "class", "", "named class: any, none, ascii, digit, letter, upper, lower, letterordigit, whitespace")

	rootCmd.AddCommand(
		countCmd,
		findCmd,
		retainCmd,
		removeCmd,
		collapseCmd,
		replaceCmd,
		trimCmd,
	)
}

// selectedMatcher builds the matcher named by the selection flags.
// Exactly one of --pattern, --chars and --class must be set.
func selectedMatcher() (charmatch.Matcher, error) {
	set := 0
	for _, f := range []string{flagPattern, flagChars, flagClass} {
		if f != "" {
			set++
		}
	}
	if set != 1 {
		return charmatch.Matcher{}, errors.New("exactly one of --pattern, --chars or --class is required")
	}

	switch {
	case flagPattern != "":
		return charmatch.Pattern(flagPattern)
	case flagChars != "":
		return charmatch.CharSet(flagChars), nil
	}
	return namedClass(flagClass)
}

func namedClass(name string) (charmatch.Matcher, error) {
	switch strings.ToLower(name) {
	case "any":
		return charmatch.Any(), nil
	case "none":
		return charmatch.None(), nil
	case "ascii":
		return charmatch.ASCII(), nil
	case "digit":
		return charmatch.Digit(), nil
	case "letter":
		return charmatch.Letter(), nil
	case "upper":
		return charmatch.UpperCaseLetter(), nil
	case "lower":
		return charmatch.LowerCaseLetter(), nil
	case "letterordigit":
		return charmatch.LetterOrDigit(), nil
	case "whitespace":
		return charmatch.Whitespace(), nil
	}
	return charmatch.Matcher{}, fmt.Errorf("unknown class %q", name)
}

// inputText returns the joined positional args, or stdin when no args
// were given.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
