package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/jep106/pkg/jep106"
)

var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Find manufacturers by name",
	Long: `Search all banks for manufacturers whose name contains QUERY, ignoring
case. Multiple arguments are joined with spaces.

Examples:
  jep106 search micron
  jep106 search "silicon storage"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	matches := jep106.Search(query)
	logger.Debug("search", zap.String("query", query), zap.Int("matches", len(matches)))

	if len(matches) == 0 && !structuredOutput() {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "No manufacturers match %q.\n", query)
		if hints := jep106.Suggest(query, 3); len(hints) > 0 {
			fmt.Fprintln(out, "Did you mean:")
			for _, e := range hints {
				fmt.Fprintf(out, "  %-16s %s\n", e.ID, e.Name)
			}
		}
		return nil
	}
	return printEntries(cmd, matches)
}
