package main

import (
	"fmt"

	"github.com/quotienthq/quotient/formats"
	"github.com/spf13/cobra"
)

var compareFormat string

var compareCmd = &cobra.Command{
	Use:   "compare <from> <to>",
	Short: "Show the structural diff between two saved versions",
	Long: `Compare two saved versions and print the row-level changes (added,
deleted, modified with field detail) and any settings changes.
Versions can be named by number ("1") or id. Use "live" as <to> to
compare a version against the current unsaved document.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		from, err := resolveVersion(sess, args[0])
		if err != nil {
			return err
		}

		format, err := formats.Get(compareFormat)
		if err != nil {
			return err
		}

		if args[1] == "live" {
			d, err := sess.CompareWithLive(from.ID)
			if err != nil {
				return err
			}
			out, err := format.RenderDiff(d)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		}

		to, err := resolveVersion(sess, args[1])
		if err != nil {
			return err
		}
		d, err := sess.CompareVersions(from.ID, to.ID)
		if err != nil {
			return err
		}
		out, err := format.RenderDiff(d)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareFormat, "format", "text", "output format: text|markdown|yaml")
}
