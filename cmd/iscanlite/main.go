package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "iscanlite",
		Short: "Lightweight OT/ICS reconnaissance engine",
		Long: `IndustrialScanner-Lite probes Modbus/TCP endpoints with read-only
requests, classifies S7Comm and DNP3 traffic from capture files, and
consolidates the resulting run summaries into cross-run indexes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newModbusCmd())
	rootCmd.AddCommand(newS7Cmd())
	rootCmd.AddCommand(newDNP3Cmd())
	rootCmd.AddCommand(newIndexCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
