package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/jep106/pkg/jep106"
)

var listBank string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List assigned manufacturers",
	Long: `List every assigned manufacturer, or only those of one bank.

Examples:
  jep106 list                # whole table
  jep106 list --bank 0       # first bank only
  jep106 list -o json -b 9   # JSON for the last bank`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listBank, "bank", "b", "",
		"only list this bank (continuation count)")
}

func runList(cmd *cobra.Command, args []string) error {
	var entries []jep106.Entry
	if listBank != "" {
		bank, err := jep106.ParseByte(listBank)
		if err != nil {
			return fmt.Errorf("invalid --bank: %w", err)
		}
		if int(bank) >= jep106.GetBankLimit() {
			return fmt.Errorf("bank %d is beyond the table limit of %d", bank, jep106.GetBankLimit())
		}
		entries = jep106.Bank(bank)
	} else {
		for id, name := range jep106.All() {
			entries = append(entries, jep106.Entry{ID: id, Name: name})
		}
	}

	return printEntries(cmd, entries)
}

func printEntries(cmd *cobra.Command, entries []jep106.Entry) error {
	if structuredOutput() {
		records := make([]manufacturerRecord, 0, len(entries))
		for _, e := range entries {
			records = append(records, newRecord(e.ID))
		}
		return printStructured(cmd, records)
	}

	out := cmd.OutOrStdout()
	for _, e := range entries {
		fmt.Fprintf(out, "%-16s %s\n", e.ID, e.Name)
	}
	return nil
}
