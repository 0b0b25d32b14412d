package record

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"projectx/internal/domain/record"
)

const timeLayout = "2006-01-02 15:04"

func jsonOutput(cmd *cobra.Command) bool {
	v, err := cmd.Flags().GetBool("json")
	return err == nil && v
}

func (s Screen[T]) print(cmd *cobra.Command, view record.View[T]) error {
	if jsonOutput(cmd) {
		return printJSON(cmd, view.Items())
	}
	if view.Len() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No records")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	header := append([]string{"#"}, s.Header...)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for pos, item := range view.All() {
		fmt.Fprintf(w, "%d\t%s\n", pos+1, strings.Join(s.Row(item), "\t"))
	}
	return w.Flush()
}

func (s Screen[T]) printOne(cmd *cobra.Command, item T) error {
	if jsonOutput(cmd) {
		return printJSON(cmd, item)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("✓"), item.RecordID())
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for i, col := range s.Row(item) {
		fmt.Fprintf(w, "  %s\t%s\n", strings.ToLower(s.Header[i]), col)
	}
	return w.Flush()
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, length int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if utf8.RuneCountInString(s) <= length {
		return s
	}
	return string([]rune(s)[:length-3]) + "..."
}
