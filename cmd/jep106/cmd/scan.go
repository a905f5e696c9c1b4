package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/jep106/pkg/jtag"
)

var (
	adapterType  string
	maxDevices   int
	adapterSpeed int
	probeID      string
	simIDCodes   []string // For simulator: IDCODEs in the chain, nearest TDO first
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a JTAG chain and name each device's manufacturer",
	Long: `Reset the JTAG chain, read the IDCODE of every device and resolve the
JEP106 manufacturer of each. Devices without an IDCODE register show up as
BYPASS entries.

Examples:
  # Two devices on the simulator
  jep106 scan --sim-ids 0x4BA00477,0x06438041

  # A device without IDCODE between two that have one
  jep106 scan --sim-ids 0x10002927,0,0x028200CB

  # Allow up to 16 devices
  jep106 scan --max 16 --sim-ids 0x41111043

  # Real chain behind a Raspberry Pi Debug Probe
  jep106 scan --adapter cmsisdap --probe 2e8a:000c`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&adapterType, "adapter", "a", "",
		"JTAG adapter type (simulator, cmsisdap)")
	scanCmd.Flags().IntVarP(&maxDevices, "max", "m", 0,
		"maximum number of devices expected in the chain (default from config)")
	scanCmd.Flags().IntVar(&adapterSpeed, "speed", 0,
		"TCK speed in Hz (default from config)")
	scanCmd.Flags().StringVar(&probeID, "probe", "",
		"cmsisdap: probe USB ID as VID:PID (default from config)")
	scanCmd.Flags().StringSliceVar(&simIDCodes, "sim-ids", nil,
		"simulator: IDCODEs in the chain (hex, 0 for a device without IDCODE)")
}

func runScan(cmd *cobra.Command, args []string) error {
	kind := cfg.Scan.Adapter
	if adapterType != "" {
		kind = adapterType
	}
	limit := cfg.Scan.MaxDevices
	if maxDevices > 0 {
		limit = maxDevices
	}
	speed := cfg.Scan.SpeedHz
	if adapterSpeed > 0 {
		speed = adapterSpeed
	}

	adapter, err := createAdapter(kind)
	if err != nil {
		return fmt.Errorf("failed to create adapter: %w", err)
	}
	if c, ok := adapter.(io.Closer); ok {
		defer c.Close()
	}

	if err := adapter.SetSpeed(speed); err != nil {
		return fmt.Errorf("failed to set speed: %w", err)
	}
	if info, err := adapter.Info(); err == nil {
		logger.Debug("adapter ready",
			zap.String("name", info.Name),
			zap.String("vendor", info.Vendor),
			zap.Int("speed_hz", speed))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	devices, err := jtag.Scan(ctx, adapter, limit)
	switch {
	case errors.Is(err, jtag.ErrChainTooLong):
		logger.Warn("chain did not terminate", zap.Int("max_devices", limit))
	case err != nil:
		return fmt.Errorf("chain scan failed: %w", err)
	}

	if structuredOutput() {
		records := make([]scanRecord, 0, len(devices))
		for _, d := range devices {
			records = append(records, newScanRecord(d))
		}
		return printStructured(cmd, records)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Found %d device(s)\n\n", len(devices))
	for _, d := range devices {
		if d.Bypass {
			fmt.Fprintf(out, "  [%d] BYPASS (no IDCODE)\n", d.Position)
			continue
		}
		info := jtag.DecodeIDCode(d.IDCode.Raw)
		fmt.Fprintf(out, "  [%d] 0x%08X  %-28s part 0x%04X  ver %d\n",
			d.Position, info.Raw, info.ManufacturerLabel(), info.PartNumber, info.Version)
	}
	if errors.Is(err, jtag.ErrChainTooLong) {
		fmt.Fprintf(out, "\nWarning: chain has more than %d device(s); raise --max to see the rest.\n", limit)
	}
	return nil
}

type scanRecord struct {
	Position     int                 `json:"position" yaml:"position"`
	Bypass       bool                `json:"bypass" yaml:"bypass"`
	IDCode       string              `json:"idcode,omitempty" yaml:"idcode,omitempty"`
	Manufacturer *manufacturerRecord `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
}

func newScanRecord(d jtag.ChainDevice) scanRecord {
	r := scanRecord{Position: d.Position, Bypass: d.Bypass}
	if !d.Bypass {
		m := newRecord(d.IDCode.JEP106())
		r.IDCode = fmt.Sprintf("0x%08X", d.IDCode.Raw)
		r.Manufacturer = &m
	}
	return r
}

// createAdapter creates the appropriate JTAG adapter based on type
func createAdapter(adapterType string) (jtag.Adapter, error) {
	switch adapterType {
	case "simulator", "sim":
		ids, err := parseIDCodes(simIDCodes)
		if err != nil {
			return nil, fmt.Errorf("invalid --sim-ids: %w", err)
		}
		logger.Debug("using simulator adapter", zap.Int("devices", len(ids)))

		info := jtag.AdapterInfo{
			Name:       "JTAG Simulator",
			Vendor:     "OpenTraceLab",
			Model:      "Sim-1.0",
			Firmware:   "v0.9.0",
			MinSpeedHz: 100,
			MaxSpeedHz: 10_000_000,
		}
		return jtag.NewChainSimulator(info, ids), nil

	case "cmsisdap", "cmsis-dap":
		id := cfg.Scan.Probe
		if probeID != "" {
			id = probeID
		}
		vid, pid, err := jtag.ParseUSBID(id)
		if err != nil {
			return nil, err
		}
		logger.Debug("opening CMSIS-DAP probe", zap.String("usb_id", id))
		return jtag.OpenCMSISDAP(vid, pid)

	default:
		return nil, fmt.Errorf("unknown adapter type: %s (supported: simulator, cmsisdap)", adapterType)
	}
}
