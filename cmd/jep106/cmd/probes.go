package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/jep106/pkg/jtag"
)

var probesCmd = &cobra.Command{
	Use:   "probes",
	Short: "List connected CMSIS-DAP probes",
	Long: `List USB devices that match a known CMSIS-DAP probe. Pass the USB ID of
one of them to "scan --adapter cmsisdap --probe VID:PID".`,
	Args: cobra.NoArgs,
	RunE: runProbes,
}

func init() {
	rootCmd.AddCommand(probesCmd)
}

type probeRecord struct {
	USBID       string `json:"usb_id" yaml:"usb_id"`
	Description string `json:"description" yaml:"description"`
	Serial      string `json:"serial,omitempty" yaml:"serial,omitempty"`
}

func runProbes(cmd *cobra.Command, args []string) error {
	probes, err := jtag.ListProbes(cmd.Context())
	if err != nil {
		return err
	}

	if structuredOutput() {
		records := make([]probeRecord, 0, len(probes))
		for _, p := range probes {
			records = append(records, probeRecord{USBID: p.USBID(), Description: p.Description, Serial: p.Serial})
		}
		return printStructured(cmd, records)
	}

	out := cmd.OutOrStdout()
	if len(probes) == 0 {
		fmt.Fprintln(out, "No CMSIS-DAP probes found.")
		return nil
	}
	for _, p := range probes {
		fmt.Fprintf(out, "  %s  %-28s %s\n", p.USBID(), p.Description, p.Serial)
	}
	return nil
}
