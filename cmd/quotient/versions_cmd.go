package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quotienthq/quotient/session"
	"github.com/quotienthq/quotient/types"
	"github.com/spf13/cobra"
)

var saveNote string

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current document as a new version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		v := sess.SaveVersion(saveNote)
		fmt.Printf("Saved version %d (%s), grand total %.2f, %d items\n",
			v.Number, v.Date, v.GrandTotal, v.ItemCount)
		for _, c := range v.Changes {
			fmt.Printf("  %s: %v -> %v\n", c.Label, c.OldValue, c.NewValue)
		}
		return nil
	},
}

var versionsSearch string

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List saved versions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		list := sess.Versions()
		if versionsSearch != "" {
			list = list[:0]
			for _, r := range sess.SearchVersions(versionsSearch) {
				list = append(list, r.Version)
			}
		}
		if len(list) == 0 {
			if versionsSearch != "" {
				fmt.Println("No matching versions.")
			} else {
				fmt.Println("No versions saved yet.")
			}
			return nil
		}
		for _, v := range list {
			line := fmt.Sprintf("v%-3d %s  total %.2f  %d items",
				v.Number, v.Date, v.GrandTotal, v.ItemCount)
			if v.Note != "" {
				line += "  " + v.Note
			}
			fmt.Println(line)
		}
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <version>",
	Short: "Delete a saved version (numbers are never reused)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		v, err := resolveVersion(sess, args[0])
		if err != nil {
			return err
		}
		if !sess.DeleteVersion(v.ID) {
			return fmt.Errorf("version %s not found", args[0])
		}
		fmt.Printf("Deleted version %d\n", v.Number)
		return nil
	},
}

func init() {
	saveCmd.Flags().StringVarP(&saveNote, "note", "m", "", "note to store with the version")
	versionsCmd.Flags().StringVar(&versionsSearch, "search", "", "filter versions by note, client, or item name")
}

// resolveVersion accepts either a user-facing version number ("2") or a
// version id.
func resolveVersion(sess *session.Session, arg string) (types.Version, error) {
	list := sess.Versions()
	if n, err := strconv.Atoi(strings.TrimPrefix(arg, "v")); err == nil {
		for _, v := range list {
			if v.Number == n {
				return v, nil
			}
		}
	}
	for _, v := range list {
		if v.ID == arg {
			return v, nil
		}
	}
	return types.Version{}, fmt.Errorf("version %s not found", arg)
}
