package main

import (
	"github.com/spf13/cobra"

	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/config"
	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/pcap"
)

func newDNP3Cmd() *cobra.Command {
	flags := &passiveFlags{}

	cmd := &cobra.Command{
		Use:   "dnp3",
		Short: "Classify DNP3 traffic from capture files",
		Long: `Analyze DNP3 traffic from one capture file or a directory of captures.
Frames on the DNP3 port (TCP or UDP) are classified into application
operations (Read, Write, Operate, Select, ColdRestart, ...) and
control-plane operations are flagged as suspect. Each capture produces
one JSON report.`,
		Example: `  # Analyze a single capture
  iscanlite dnp3 --pcap traffic/substation.pcapng

  # Analyze every capture under a directory
  iscanlite dnp3 --pcap-dir traffic/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPassive(flags, pcap.DNP3, func(c *config.Config) uint16 { return c.DNP3.Port }, "dnp3_batch")
		},
	}

	registerPassiveFlags(cmd, flags)
	return cmd
}
