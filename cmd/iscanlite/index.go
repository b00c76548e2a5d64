package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/errors"
	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/index"
	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/report"
)

type indexFlags struct {
	reportsDir string
	jsonOut    string
	csvOut     string
	configPath string
}

func newIndexCmd() *cobra.Command {
	flags := &indexFlags{}

	cmd := &cobra.Command{
		Use:   "index",
		Short: "Consolidate run summaries into a global index",
		Long: `Consolidate the persisted run summaries under the reports directory
(modbus_batch, s7_batch, dnp3_batch) into per-protocol roll-ups and a
global index. Unreadable or malformed summaries are skipped with a
recorded warning and contribute zero to all totals.`,
		Example: `  # Consolidate the default reports directory
  iscanlite index

  # Write the index as JSON and CSV
  iscanlite index --json-out reports/index.json --csv-out reports/index.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndex(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.reportsDir, "reports-dir", "", "Reports directory to consolidate (default from config)")
	cmd.Flags().StringVar(&flags.jsonOut, "json-out", "", "Write the global index as JSON to this path")
	cmd.Flags().StringVar(&flags.csvOut, "csv-out", "", "Write the global index as CSV to this path")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "YAML configuration file")

	return cmd
}

func runIndex(cmd *cobra.Command, flags *indexFlags) error {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}
	reportsDir := flags.reportsDir
	if reportsDir == "" {
		reportsDir = cfg.ReportsDir
	}

	// Fixed display order, independent of any computed metric.
	sources := []struct {
		protocol string
		dir      string
	}{
		{"Modbus", "modbus_batch"},
		{"S7Comm", "s7_batch"},
		{"DNP3", "dnp3_batch"},
	}

	rollups := make([]index.ProtocolRollup, 0, len(sources))
	for _, src := range sources {
		rollup, err := index.LoadDir(src.protocol, filepath.Join(reportsDir, src.dir))
		if err != nil {
			return err
		}
		rollups = append(rollups, rollup)
	}
	idx := index.Consolidate(rollups)

	if flags.jsonOut != "" {
		if err := report.WriteJSONFile(flags.jsonOut, idx); err != nil {
			return errors.WrapReportError(err, flags.jsonOut)
		}
	}
	if flags.csvOut != "" {
		if err := index.WriteCSVFile(flags.csvOut, idx); err != nil {
			return errors.WrapReportError(err, flags.csvOut)
		}
	}

	index.RenderText(os.Stdout, idx)
	return nil
}
