package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/jep106/internal/config"
	"github.com/OpenTraceLab/jep106/internal/logging"
)

var (
	// Global flags
	cfgFile   string
	verbose   bool
	logLevel  string
	outputFmt string

	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "jep106",
	Short: "JEDEC JEP106 manufacturer lookup",
	Long: `Look up JEDEC JEP106 manufacturer names by bank and code, decode JTAG
IDCODEs, scan a JTAG chain for its vendors, or serve the table over HTTP.

A bank is the number of 0x7F continuation bytes read before the code, so
the first published bank is bank 0 here.

Examples:
  jep106 lookup 0x09                                  # Intel
  jep106 lookup --bank 4 0x3B                         # ARM Ltd
  jep106 lookup --parity 0xC2                         # Macronix, parity bit stripped
  jep106 idcode 0x4BA00477                            # decode a JTAG IDCODE
  jep106 scan --sim-ids 0x4BA00477,0x06438041         # scan a simulated chain
  jep106 serve --addr :8106                           # HTTP lookup service`,
	Version:           "0.9.0",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./jep106.yaml or $HOME/.config/jep106/jep106.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "", "output format (text, json, yaml)")
}

// setup loads configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	if logLevel != "" {
		c.Log.Level = logLevel
	} else if verbose {
		c.Log.Level = "debug"
	}
	if outputFmt != "" {
		c.Output.Format = outputFmt
	}
	if err := c.Validate(); err != nil {
		return err
	}

	l, err := logging.New(c.Log)
	if err != nil {
		return err
	}

	cfg, logger = c, l
	logger.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("output", c.Output.Format),
		zap.String("log_level", c.Log.Level))
	return nil
}
