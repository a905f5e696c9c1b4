package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/jep106/pkg/idcode"
	"github.com/OpenTraceLab/jep106/pkg/jep106"
	"github.com/OpenTraceLab/jep106/pkg/jtag"
)

var idcodeCmd = &cobra.Command{
	Use:   "idcode IDCODE [IDCODE...]",
	Short: "Decode JTAG IDCODEs",
	Long: `Split 32-bit IEEE 1149.1 IDCODEs into version, part number and JEP106
manufacturer. Bits [11:8] carry the bank and bits [7:1] the code.

Examples:
  jep106 idcode 0x4BA00477
  jep106 idcode 06438041 41111043`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIDCode,
}

func init() {
	rootCmd.AddCommand(idcodeCmd)
}

type idcodeRecord struct {
	Raw          string             `json:"raw" yaml:"raw"`
	Version      uint8              `json:"version" yaml:"version"`
	PartNumber   uint16             `json:"part_number" yaml:"part_number"`
	Valid        bool               `json:"valid" yaml:"valid"`
	Manufacturer manufacturerRecord `json:"manufacturer" yaml:"manufacturer"`
}

func runIDCode(cmd *cobra.Command, args []string) error {
	ids, err := parseIDCodes(args)
	if err != nil {
		return err
	}

	if structuredOutput() {
		records := make([]idcodeRecord, 0, len(ids))
		for _, raw := range ids {
			id := idcode.ParseIDCode(raw)
			records = append(records, idcodeRecord{
				Raw:          fmt.Sprintf("0x%08X", raw),
				Version:      id.Version,
				PartNumber:   id.PartNumber,
				Valid:        id.Valid(),
				Manufacturer: newRecord(id.JEP106()),
			})
		}
		return printStructured(cmd, records)
	}

	out := cmd.OutOrStdout()
	for _, raw := range ids {
		info := jtag.DecodeIDCode(raw)
		fmt.Fprintf(out, "IDCODE 0x%08X\n", info.Raw)
		if !idcode.ParseIDCode(raw).Valid() {
			fmt.Fprintf(out, "  (not a valid IDCODE)\n")
		}
		fmt.Fprintf(out, "  Version:      %d\n", info.Version)
		fmt.Fprintf(out, "  Part Number:  0x%04X\n", info.PartNumber)
		fmt.Fprintf(out, "  JEP106:       %s (%d continuation bytes)\n", jep106.ID{Bank: info.Bank, Code: info.Code}, info.Bank)
		fmt.Fprintf(out, "  Manufacturer: %s\n", info.ManufacturerLabel())
	}
	return nil
}

// parseIDCodes parses hex IDCODE strings into uint32 values
func parseIDCodes(codes []string) ([]uint32, error) {
	ids := make([]uint32, len(codes))
	for i, code := range codes {
		id, err := idcode.ParseHex(code)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}
