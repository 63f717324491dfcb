package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hong0506/haoin-tools-sub002/internal/tools"
)

func newToolCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tool",
		Short: "Run a built-in tool from the command line",
	}
	cmd.AddCommand(
		newToolUUIDCmd(opts),
		newToolDateDiffCmd(opts),
		newToolAgeCmd(opts),
		newToolLoanCmd(opts),
		newToolTipCmd(opts),
		newToolWordCountCmd(opts),
		newToolStripHTMLCmd(opts),
		newToolCaseCmd(opts),
	)
	return cmd
}

func newToolUUIDCmd(opts *cliOptions) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "uuid",
		Short: "Generate random v4 UUIDs",
		RunE: func(_ *cobra.Command, _ []string) error {
			ids := tools.NewUUIDs(count)
			if opts.jsonOutput {
				return writeJSON(map[string]any{"uuids": ids})
			}
			for _, id := range ids {
				fmt.Println(id)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of UUIDs to generate")
	return cmd
}

func newToolDateDiffCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "date-diff <from> <to>",
		Short: "Difference between two dates (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			from, err := parseDay(args[0])
			if err != nil {
				return err
			}
			to, err := parseDay(args[1])
			if err != nil {
				return err
			}
			diff := tools.DiffDates(from, to)
			if opts.jsonOutput {
				return writeJSON(diff)
			}
			fmt.Printf("%d days, %d weeks, %d months, %d years\n",
				diff.Days, diff.Weeks, diff.Months, diff.Years)
			return nil
		},
	}
}

func newToolAgeCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "age <birth-date>",
		Short: "Exact age for a birth date (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			birth, err := parseDay(args[0])
			if err != nil {
				return err
			}
			age := tools.AgeAt(birth, time.Now())
			if opts.jsonOutput {
				return writeJSON(age)
			}
			fmt.Printf("%d years, %d months, %d days\n", age.Years, age.Months, age.Days)
			return nil
		},
	}
}

func newToolLoanCmd(opts *cliOptions) *cobra.Command {
	var (
		principal float64
		rate      float64
		months    int
	)

	cmd := &cobra.Command{
		Use:   "loan",
		Short: "Fixed-rate loan payment calculator",
		RunE: func(_ *cobra.Command, _ []string) error {
			quote, err := tools.LoanPayment(principal, rate, months)
			if err != nil {
				return exitWithMessage(2, err.Error())
			}
			if opts.jsonOutput {
				return writeJSON(quote)
			}
			fmt.Printf("monthly %.2f, total %.2f, interest %.2f\n",
				quote.MonthlyPayment, quote.TotalPayment, quote.TotalInterest)
			return nil
		},
	}

	cmd.Flags().Float64Var(&principal, "principal", 0, "loan principal")
	cmd.Flags().Float64Var(&rate, "rate", 0, "annual interest rate in percent")
	cmd.Flags().IntVar(&months, "months", 0, "loan term in months")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("months")
	return cmd
}

func newToolTipCmd(opts *cliOptions) *cobra.Command {
	var (
		bill    float64
		percent float64
		people  int
	)

	cmd := &cobra.Command{
		Use:   "tip",
		Short: "Split a bill with a percentage tip",
		RunE: func(_ *cobra.Command, _ []string) error {
			split, err := tools.Tip(bill, percent, people)
			if err != nil {
				return exitWithMessage(2, err.Error())
			}
			if opts.jsonOutput {
				return writeJSON(split)
			}
			fmt.Printf("tip %.2f, total %.2f, per person %.2f\n",
				split.Tip, split.Total, split.PerPerson)
			return nil
		},
	}

	cmd.Flags().Float64Var(&bill, "bill", 0, "bill amount")
	cmd.Flags().Float64Var(&percent, "percent", 15, "tip percentage")
	cmd.Flags().IntVar(&people, "people", 1, "number of people")
	_ = cmd.MarkFlagRequired("bill")
	return cmd
}

func newToolWordCountCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "word-count [text]",
		Short: "Count words, characters and lines (reads stdin without args)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textFromArgsOrStdin(cmd, args)
			if err != nil {
				return err
			}
			stats := tools.CountText(text)
			if opts.jsonOutput {
				return writeJSON(stats)
			}
			fmt.Printf("%d words, %d characters, %d lines\n",
				stats.Words, stats.Characters, stats.Lines)
			return nil
		},
	}
}

func newToolStripHTMLCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "strip-html [markup]",
		Short: "Remove HTML tags and decode entities (reads stdin without args)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			markup, err := textFromArgsOrStdin(cmd, args)
			if err != nil {
				return err
			}
			text := tools.StripHTML(markup)
			if opts.jsonOutput {
				return writeJSON(map[string]any{"text": text})
			}
			fmt.Println(text)
			return nil
		},
	}
}

func newToolCaseCmd(opts *cliOptions) *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "case [text]",
		Short: "Convert text case: upper, lower, title or sentence",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textFromArgsOrStdin(cmd, args)
			if err != nil {
				return err
			}
			converted := tools.ConvertCase(text, style)
			if opts.jsonOutput {
				return writeJSON(map[string]any{"text": converted})
			}
			fmt.Println(converted)
			return nil
		},
	}

	cmd.Flags().StringVar(&style, "style", "title", "case style")
	return cmd
}

func parseDay(value string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, exitWithMessage(2, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value))
	}
	return day, nil
}

func textFromArgsOrStdin(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
