package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestEvalShell(t *testing.T) {
	tests := []struct {
		line     string
		wantQuit bool
		want     []string
	}{
		{line: "", want: nil},
		{line: "lookup 0x09", want: []string{"bank 1, 0x09", "Intel"}},
		{line: "LOOKUP 0x3B 4", want: []string{"ARM Ltd"}},
		{line: "lookup 0x00", want: []string{"Unknown (0x00)"}},
		{line: "lookup", want: []string{"usage: lookup CODE [BANK]"}},
		{line: "lookup 0x01 bank", want: []string{"error: invalid bank"}},
		{line: "idcode 0x10002927", want: []string{"0x10002927", "Raspberry Pi Trading Ltd", "part 0x0002"}},
		{line: "idcode", want: []string{"usage: idcode HEX"}},
		{line: "idcode nothex", want: []string{"error: invalid IDCODE format"}},
		{line: "search eon silicon", want: []string{"Eon Silicon Devices"}},
		{line: "search kingstn", want: []string{"No manufacturers match", "Did you mean:", "Kingston"}},
		{line: "banks", want: []string{"Bank limit: 15"}},
		{line: "help", want: []string{"lookup CODE [BANK]"}},
		{line: "frobnicate", want: []string{`unknown command "frobnicate"`}},
		{line: "exit", wantQuit: true},
		{line: "  quit  ", wantQuit: true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			var buf bytes.Buffer
			if quit := evalShell(&buf, tt.line); quit != tt.wantQuit {
				t.Fatalf("evalShell(%q) quit = %v, want %v", tt.line, quit, tt.wantQuit)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q\nGot:\n%s", want, buf.String())
				}
			}
		})
	}
}
