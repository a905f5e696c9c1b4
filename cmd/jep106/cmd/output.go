package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/OpenTraceLab/jep106/pkg/jep106"
)

// manufacturerRecord is the JSON shape shared by lookup, list and search.
type manufacturerRecord struct {
	Bank  uint8  `json:"bank" yaml:"bank"`
	Code  uint8  `json:"code" yaml:"code"`
	Label string `json:"label" yaml:"label"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Found bool   `json:"found" yaml:"found"`
}

func newRecord(id jep106.ID) manufacturerRecord {
	name := id.Name()
	return manufacturerRecord{Bank: id.Bank, Code: id.Code, Label: id.String(), Name: name, Found: name != ""}
}

// structuredOutput reports whether results go out as JSON or YAML rather
// than text tables.
func structuredOutput() bool {
	return cfg != nil && cfg.Output.Format != "text"
}

func printStructured(cmd *cobra.Command, v any) error {
	if cfg.Output.Format == "yaml" {
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// displayName renders a lookup result, falling back to the caller-facing
// "Unknown (0xCC)" form for misses.
func displayName(id jep106.ID) string {
	if name := id.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("Unknown (0x%02X)", id.Code)
}
