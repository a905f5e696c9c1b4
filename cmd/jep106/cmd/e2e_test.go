package cmd

import (
	"bytes"
	"strings"
	"testing"
)

// resetFlags clears flag state left behind by a previous Execute.
func resetFlags() {
	cfgFile = ""
	verbose = false
	logLevel = ""
	outputFmt = ""

	lookupBank = "0"
	lookupParity = false
	listBank = ""

	adapterType = ""
	maxDevices = 0
	adapterSpeed = 0
	simIDCodes = nil
	probeID = ""

	serveAddr = ""
}

func TestCommandsE2E(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		wantContain []string
		wantAbsent  []string
	}{
		{
			name:        "lookup bank 0",
			args:        []string{"lookup", "0x09", "0x20", "0x49"},
			wantContain: []string{"bank 1, 0x09", "Intel", "STMicroelectronics", "Xilinx"},
		},
		{
			name:        "lookup other bank",
			args:        []string{"lookup", "--bank", "4", "0x3B"},
			wantContain: []string{"bank 5, 0x3B", "ARM Ltd"},
		},
		{
			name:        "lookup with parity",
			args:        []string{"lookup", "--parity", "0xC2", "0x89"},
			wantContain: []string{"Macronix", "Intel"},
		},
		{
			name:        "lookup reserved and out of range",
			args:        []string{"lookup", "0x00", "0x7F", "0x80"},
			wantContain: []string{"Unknown (0x00)", "Unknown (0x7F)", "Unknown (0x80)"},
		},
		{
			name:        "lookup beyond bank limit",
			args:        []string{"lookup", "--bank", "200", "0x01"},
			wantContain: []string{"Unknown (0x01)"},
		},
		{
			name:        "lookup json",
			args:        []string{"-o", "json", "lookup", "0x6E"},
			wantContain: []string{`"name": "Altera"`, `"found": true`},
		},
		{
			name:        "lookup yaml",
			args:        []string{"-o", "yaml", "lookup", "--bank", "1", "0x18"},
			wantContain: []string{"name: Kingston", "label: bank 2, 0x18", "found: true"},
		},
		{
			name:    "lookup bad code",
			args:    []string{"lookup", "intel"},
			wantErr: true,
		},
		{
			name:    "lookup code wider than a byte",
			args:    []string{"lookup", "0x100"},
			wantErr: true,
		},
		{
			name:        "banks",
			args:        []string{"banks"},
			wantContain: []string{"Bank limit: 15", "Total manufacturers:"},
		},
		{
			name:        "list one bank",
			args:        []string{"list", "--bank", "9"},
			wantContain: []string{"bank 10, 0x13", "Raspberry Pi Trading Ltd"},
			wantAbsent:  []string{"Intel"},
		},
		{
			name:    "list bank beyond table",
			args:    []string{"list", "--bank", "15"},
			wantErr: true,
		},
		{
			name:        "search",
			args:        []string{"search", "gigadevice"},
			wantContain: []string{"GigaDevice Semiconductor", "bank 7, 0x48", "bank 8, 0x51"},
		},
		{
			name:        "search no match",
			args:        []string{"search", "no such vendor"},
			wantContain: []string{`No manufacturers match "no such vendor".`},
		},
		{
			name:        "search suggests",
			args:        []string{"search", "kingstn"},
			wantContain: []string{"No manufacturers match", "Did you mean:", "Kingston"},
		},
		{
			name:        "decode idcode",
			args:        []string{"idcode", "0x4BA00477"},
			wantContain: []string{"IDCODE 0x4BA00477", "Part Number:  0xBA00", "ARM Ltd"},
		},
		{
			name:        "decode idcode without prefix",
			args:        []string{"idcode", "06438041", "41111043"},
			wantContain: []string{"STMicroelectronics", "Lattice Semi."},
		},
		{
			name:        "decode idcode from a late bank",
			args:        []string{"idcode", "0x00005c25"},
			wantContain: []string{"JEP106:       bank 13, 0x12 (12 continuation bytes)", "Espressif Systems"},
			wantAbsent:  []string{"Unknown"},
		},
		{
			name:        "list late bank",
			args:        []string{"list", "--bank", "12"},
			wantContain: []string{"bank 13, 0x12", "Espressif Systems"},
		},
		{
			name:    "decode bad idcode",
			args:    []string{"idcode", "0xZZ"},
			wantErr: true,
		},
		{
			name: "scan simulated chain",
			args: []string{"scan", "--sim-ids", "0x4BA00477,0,0x06438041"},
			wantContain: []string{
				"Found 3 device(s)",
				"[0] 0x4BA00477",
				"ARM Ltd",
				"[1] BYPASS",
				"[2] 0x06438041",
				"STMicroelectronics",
			},
		},
		{
			name:        "scan longer than max",
			args:        []string{"scan", "--max", "1", "--sim-ids", "0x4BA00477", "--sim-ids", "0x06438041"},
			wantContain: []string{"Found 1 device(s)", "raise --max"},
		},
		{
			name:        "scan json",
			args:        []string{"-o", "json", "scan", "--sim-ids", "0x10002927"},
			wantContain: []string{`"idcode": "0x10002927"`, `"name": "Raspberry Pi Trading Ltd"`},
		},
		{
			name:    "scan empty chain",
			args:    []string{"scan"},
			wantErr: true,
		},
		{
			name:    "scan unknown adapter",
			args:    []string{"scan", "--adapter", "cmsisdap"},
			wantErr: true,
		},
		{
			name:    "bad output format",
			args:    []string{"-o", "xml", "banks"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			resetFlags()

			var buf bytes.Buffer
			rootCmd.SetOut(&buf)
			rootCmd.SetErr(&buf)
			rootCmd.SetArgs(tt.args)

			err := rootCmd.Execute()
			output := buf.String()

			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error but got none\nOutput: %s", output)
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v\nOutput: %s", err, output)
				return
			}

			for _, want := range tt.wantContain {
				if !strings.Contains(output, want) {
					t.Errorf("Output missing expected string: %q\nGot:\n%s", want, output)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(output, absent) {
					t.Errorf("Output contains unexpected string: %q\nGot:\n%s", absent, output)
				}
			}
		})
	}
}
