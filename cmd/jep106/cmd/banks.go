package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/jep106/pkg/jep106"
)

var banksCmd = &cobra.Command{
	Use:   "banks",
	Short: "Show the banks in the compiled-in table",
	Long: `Print the bank limit and how many of the 126 codes in each bank are
assigned. The Bank column uses the one-based numbering of the published
tables; the Continuation column is the value to pass as --bank.`,
	Args: cobra.NoArgs,
	RunE: runBanks,
}

func init() {
	rootCmd.AddCommand(banksCmd)
}

type bankRecord struct {
	Bank     uint8 `json:"bank" yaml:"bank"`
	Assigned int   `json:"assigned" yaml:"assigned"`
}

func runBanks(cmd *cobra.Command, args []string) error {
	limit := jep106.GetBankLimit()
	records := make([]bankRecord, 0, limit)
	for b := 0; b < limit; b++ {
		records = append(records, bankRecord{Bank: uint8(b), Assigned: jep106.Assigned(uint8(b))})
	}

	if structuredOutput() {
		return printStructured(cmd, map[string]any{"limit": limit, "bank_size": jep106.BankSize, "banks": records})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Bank limit: %d\n\n", limit)
	fmt.Fprintf(out, "  %-6s %-14s %s\n", "Bank", "Continuation", "Assigned")
	total := 0
	for _, r := range records {
		fmt.Fprintf(out, "  %-6d %-14d %d/%d\n", int(r.Bank)+1, r.Bank, r.Assigned, jep106.BankSize)
		total += r.Assigned
	}
	fmt.Fprintf(out, "\nTotal manufacturers: %d\n", total)
	return nil
}
