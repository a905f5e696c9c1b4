package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/jep106/pkg/jep106"
)

var (
	lookupBank   string
	lookupParity bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup CODE [CODE...]",
	Short: "Look up manufacturer names by JEP106 code",
	Long: `Resolve one or more JEP106 manufacturer codes in a bank. Codes and the bank
accept decimal or 0x-prefixed hex. Codes outside 0x01-0x7E, banks beyond the
table and unassigned slots print as "Unknown (0xCC)".

Examples:
  jep106 lookup 0x20                  # STMicroelectronics
  jep106 lookup --bank 9 0x13         # Raspberry Pi Trading Ltd
  jep106 lookup --parity 0xC2 0xEF    # codes as read from an SPI flash`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)

	lookupCmd.Flags().StringVarP(&lookupBank, "bank", "b", "0",
		"bank, i.e. the number of 0x7F continuation bytes")
	lookupCmd.Flags().BoolVarP(&lookupParity, "parity", "p", false,
		"strip the odd-parity bit 7 from each code before lookup")
}

func runLookup(cmd *cobra.Command, args []string) error {
	bank, err := jep106.ParseByte(lookupBank)
	if err != nil {
		return fmt.Errorf("invalid --bank: %w", err)
	}
	if int(bank) >= jep106.GetBankLimit() {
		logger.Warn("bank beyond table", zap.Uint8("bank", bank), zap.Int("limit", jep106.GetBankLimit()))
	}

	records := make([]manufacturerRecord, 0, len(args))
	for _, arg := range args {
		code, err := jep106.ParseByte(arg)
		if err != nil {
			return fmt.Errorf("invalid code: %w", err)
		}
		if lookupParity {
			var odd bool
			code, odd = jep106.StripParity(code)
			if !odd {
				logger.Warn("code fails odd parity", zap.String("code", arg))
			}
		}

		id := jep106.ID{Bank: bank, Code: code}
		logger.Debug("lookup", zap.Stringer("id", id), zap.String("name", id.Name()))
		records = append(records, newRecord(id))
	}

	if structuredOutput() {
		return printStructured(cmd, records)
	}

	out := cmd.OutOrStdout()
	for _, r := range records {
		id := jep106.ID{Bank: r.Bank, Code: r.Code}
		fmt.Fprintf(out, "%-16s %s\n", id, displayName(id))
	}
	return nil
}
