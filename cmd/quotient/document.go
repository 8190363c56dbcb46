package main

import (
	"fmt"
	"strconv"

	"github.com/quotienthq/quotient/formats"
	"github.com/quotienthq/quotient/types"
	"github.com/spf13/cobra"
)

var (
	showFormat   string
	exportFormat string
	loadVersion  string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		format, err := formats.Get(showFormat)
		if err != nil {
			return err
		}
		out, err := format.RenderDocument(sess.Document())
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the document (or a saved version) in a chosen format",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		doc := sess.Document()
		if loadVersion != "" {
			v, err := resolveVersion(sess, loadVersion)
			if err != nil {
				return err
			}
			doc = v.Document
		}

		format, err := formats.Get(exportFormat)
		if err != nil {
			return err
		}
		out, err := format.RenderDocument(doc)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Edit a document setting (recorded in undo history)",
	Long: `Edit one settings scalar as a committed edit: the change is pushed
onto the undo history and persisted.

Fields: client, discount-type (flat|percent), discount, gst (on|off),
gst-rate, paid.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer func() { _ = sess.Close() }()

		// Validate up front so a bad invocation never lands a no-op
		// entry on the undo history.
		field, value := args[0], args[1]
		apply, err := settingEdit(field, value)
		if err != nil {
			return err
		}
		sess.Edit(apply)
		fmt.Printf("Set %s = %s (grand total %.2f)\n", field, value, sess.Document().GrandTotal())
		return nil
	},
}

func init() {
	showCmd.Flags().StringVar(&showFormat, "format", "text", "output format: text|markdown|yaml")
	exportCmd.Flags().StringVar(&exportFormat, "format", "markdown", "output format: text|markdown|yaml")
	exportCmd.Flags().StringVar(&loadVersion, "version", "", "export a saved version instead of the live document")
}

// settingEdit resolves a field name and raw value into a mutation to
// run inside Session.Edit.
func settingEdit(field, value string) (func(*types.Document), error) {
	switch field {
	case "client":
		return func(doc *types.Document) { doc.Client.Name = value }, nil
	case "discount-type":
		if value != types.DiscountFlat && value != types.DiscountPercent && value != types.DiscountNone {
			return nil, fmt.Errorf("discount-type must be flat or percent, got %q", value)
		}
		return func(doc *types.Document) { doc.Settings.DiscountType = value }, nil
	case "discount":
		v, err := parseNumber(value)
		if err != nil {
			return nil, err
		}
		return func(doc *types.Document) { doc.Settings.DiscountValue = v }, nil
	case "gst":
		on := value == "on" || value == "true"
		return func(doc *types.Document) { doc.Settings.GSTEnabled = on }, nil
	case "gst-rate":
		v, err := parseNumber(value)
		if err != nil {
			return nil, err
		}
		return func(doc *types.Document) { doc.Settings.GSTRate = v }, nil
	case "paid":
		v, err := parseNumber(value)
		if err != nil {
			return nil, err
		}
		return func(doc *types.Document) { doc.Settings.PaidAmount = v }, nil
	default:
		return nil, fmt.Errorf("unknown field %q", field)
	}
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}
