// Command jep106gen regenerates pkg/jep106/table.go from a C source that lists
// the JEP106 banks as string arrays, such as edk2's
// MdePkg/Library/JedecJep106Lib/JedecJep106Lib.c.
//
//	jep106gen --source "edk2 <commit>" -o pkg/jep106/table.go JedecJep106Lib.c
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/jep106/internal/tablegen"
)

func main() {
	var (
		output string
		source string
		offset int
	)

	cmd := &cobra.Command{
		Use:   "jep106gen [flags] JedecJep106Lib.c",
		Short: "Generate the JEP106 bank table from C source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := tablegen.NewParser()
			if err != nil {
				return err
			}
			arrays, err := parser.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			name := filepath.Base(args[0])
			if s := strings.TrimSpace(source); s != "" {
				name += " (" + s + ")"
			}
			table, err := tablegen.NewTable(name, arrays, offset)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := table.WriteGo(&buf); err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s: %d banks, assigned per bank %v\n",
				output, len(table.Banks), table.Assigned())
			return nil
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&source, "source", "", "revision of the input to record in the generated header")
	cmd.Flags().IntVar(&offset, "offset", 0, "array index of code 0x01 in the input banks")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
