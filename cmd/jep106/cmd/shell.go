package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/jep106/pkg/idcode"
	"github.com/OpenTraceLab/jep106/pkg/jep106"
)

const shellHelp = `Commands:
  lookup CODE [BANK]   manufacturer of CODE in BANK (default 0)
  idcode HEX           decode a JTAG IDCODE
  search QUERY         find manufacturers by name
  banks                show the bank limit
  help                 show this text
  exit                 leave the shell`

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive lookup shell",
	Long: `Read lookup commands from an interactive prompt with history and tab
completion.

` + shellHelp,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	rlCfg := &readline.Config{
		Prompt: "jep106> ",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("lookup"),
			readline.PcItem("idcode"),
			readline.PcItem("search"),
			readline.PcItem("banks"),
			readline.PcItem("help"),
			readline.PcItem("exit"),
		),
		Stdout: cmd.OutOrStdout(),
	}
	if home, err := homedir.Dir(); err == nil {
		rlCfg.HistoryFile = filepath.Join(home, ".config", "jep106", "history")
	}

	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	defer rl.Close()
	rl.CaptureExitSignal()

	for {
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if line == "" {
				return nil
			}
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("shell: %w", err)
		}
		if evalShell(rl.Stdout(), line) {
			return nil
		}
	}
}

// evalShell runs one shell line and reports whether the shell should exit.
func evalShell(out io.Writer, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch verb, rest := strings.ToLower(fields[0]), fields[1:]; verb {
	case "exit", "quit":
		return true
	case "help", "?":
		fmt.Fprintln(out, shellHelp)
	case "lookup":
		if err := shellLookup(out, rest); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	case "idcode":
		if len(rest) != 1 {
			fmt.Fprintln(out, "usage: idcode HEX")
			break
		}
		raw, err := idcode.ParseHex(rest[0])
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			break
		}
		id := idcode.ParseIDCode(raw)
		fmt.Fprintf(out, "0x%08X  %s  part 0x%04X  ver %d\n", raw, id.ManufacturerName(), id.PartNumber, id.Version)
	case "search":
		query := strings.Join(rest, " ")
		matches := jep106.Search(query)
		if len(matches) == 0 {
			fmt.Fprintf(out, "No manufacturers match %q.\n", query)
			matches = jep106.Suggest(query, 3)
			if len(matches) > 0 {
				fmt.Fprintln(out, "Did you mean:")
			}
		}
		for _, e := range matches {
			fmt.Fprintf(out, "  %-16s %s\n", e.ID, e.Name)
		}
	case "banks":
		fmt.Fprintf(out, "Bank limit: %d\n", jep106.GetBankLimit())
	default:
		fmt.Fprintf(out, "unknown command %q, try help\n", fields[0])
	}
	return false
}

func shellLookup(out io.Writer, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return errors.New("usage: lookup CODE [BANK]")
	}
	code, err := jep106.ParseByte(args[0])
	if err != nil {
		return fmt.Errorf("invalid code: %w", err)
	}
	var bank uint8
	if len(args) == 2 {
		if bank, err = jep106.ParseByte(args[1]); err != nil {
			return fmt.Errorf("invalid bank: %w", err)
		}
	}
	id := jep106.ID{Bank: bank, Code: code}
	fmt.Fprintf(out, "%-16s %s\n", id, displayName(id))
	return nil
}
