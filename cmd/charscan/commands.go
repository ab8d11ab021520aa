package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/charmatch"
)

var flagReplacement string // replacement text for collapse/replace

func init() {
	for _, cmd := range []*cobra.Command{collapseCmd, replaceCmd} {
		cmd.Flags().StringVarP(&flagReplacement, "replacement", "r", " ", "replacement text")
	}
}

// runScan wires a scan operation into a cobra Run function: resolve the
// matcher, read the input, print the operation's result.
func runScan(op func(m charmatch.Matcher, text string) string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		m, err := selectedMatcher()
		if err != nil {
			return err
		}
		text, err := inputText(cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), op(m, text))
		return nil
	}
}

var countCmd = &cobra.Command{
	Use:   "count [text]",
	Short: "Count matching characters",
	RunE: runScan(func(m charmatch.Matcher, text string) string {
		return fmt.Sprintf("%d", m.CountIn(text))
	}),
}

var findCmd = &cobra.Command{
	Use:   "find [text]",
	Short: "Print the rune index of the first match, or -1",
	RunE: runScan(func(m charmatch.Matcher, text string) string {
		return fmt.Sprintf("%d", m.FirstIndexIn(text))
	}),
}

var retainCmd = &cobra.Command{
	Use:   "retain [text]",
	Short: "Keep only matching characters",
	RunE: runScan(func(m charmatch.Matcher, text string) string {
		return m.RetainFrom(text)
	}),
}

var removeCmd = &cobra.Command{
	Use:   "remove [text]",
	Short: "Drop matching characters",
	RunE: runScan(func(m charmatch.Matcher, text string) string {
		return m.RemoveFrom(text)
	}),
}

var collapseCmd = &cobra.Command{
	Use:   "collapse [text]",
	Short: "Collapse runs of matching characters into the replacement",
	RunE: runScan(func(m charmatch.Matcher, text string) string {
		return m.CollapseFrom(text, flagReplacement)
	}),
}

var replaceCmd = &cobra.Command{
	Use:   "replace [text]",
	Short: "Replace each matching character with the replacement",
	RunE: runScan(func(m charmatch.Matcher, text string) string {
		return m.ReplaceFrom(text, flagReplacement)
	}),
}

var trimCmd = &cobra.Command{
	Use:   "trim [text]",
	Short: "Strip matching characters from both ends",
	RunE: runScan(func(m charmatch.Matcher, text string) string {
		return m.TrimFrom(text)
	}),
}
