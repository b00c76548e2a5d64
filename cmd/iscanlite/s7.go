package main

import (
	"github.com/spf13/cobra"

	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/config"
	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/pcap"
)

func newS7Cmd() *cobra.Command {
	flags := &passiveFlags{}

	cmd := &cobra.Command{
		Use:   "s7",
		Short: "Classify S7Comm traffic from capture files",
		Long: `Analyze Siemens S7Comm traffic from one capture file or a directory of
captures. Frames on the S7 port whose payload carries the S7 protocol
header are classified into operations (ReadVar, WriteVar, Start, Stop,
DownloadBlock, ...) and control-sensitive operations are flagged as
suspect. Each capture produces one JSON report.`,
		Example: `  # Analyze a single capture
  iscanlite s7 --pcap traffic/plant_floor.pcap

  # Analyze every capture under a directory
  iscanlite s7 --pcap-dir traffic/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPassive(flags, pcap.S7, func(c *config.Config) uint16 { return c.S7.Port }, "s7_batch")
		},
	}

	registerPassiveFlags(cmd, flags)
	return cmd
}
