package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/aggregate"
	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/config"
	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/errors"
	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/logging"
	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/probe"
	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/progress"
	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/report"
	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/target"
)

type modbusFlags struct {
	targets    string
	port       int
	unitID     uint8
	timeout    time.Duration
	workers    int
	jsonOut    string
	configPath string
	logFile    string
	verbose    bool
}

func newModbusCmd() *cobra.Command {
	flags := &modbusFlags{}

	cmd := &cobra.Command{
		Use:   "modbus",
		Short: "Probe Modbus/TCP endpoints with read-only requests",
		Long: `Probe one or more Modbus/TCP endpoints with four small bounded reads
(coils, discrete inputs, holding registers, input registers) and record
reachability, latency, and exposure indicators per unit.

Probes are strictly read-only: no writes, no retries, one connection per
target. Transport failures degrade the affected probe but never abort the
batch.

Targets accept a single host, a comma-separated list, a CIDR block, or
@file with one target per line.`,
		Example: `  # Probe a single PLC
  iscanlite modbus --targets 192.168.1.10

  # Sweep a /24 with a larger worker pool
  iscanlite modbus --targets 10.10.0.0/24 --workers 32

  # Targets from a file, custom unit ID
  iscanlite modbus --targets @plants.txt --unit 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModbus(cmd, flags)
		},
	}

	defaults := config.Default()
	cmd.Flags().StringVar(&flags.targets, "targets", "", "Host, comma list, CIDR block, or @file (required)")
	cmd.Flags().IntVar(&flags.port, "port", defaults.Modbus.Port, "Modbus/TCP port")
	cmd.Flags().Uint8Var(&flags.unitID, "unit", defaults.Modbus.UnitID, "Modbus unit identifier")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", defaults.Modbus.Timeout(), "Per-probe timeout")
	cmd.Flags().IntVar(&flags.workers, "workers", defaults.Modbus.Workers, "Concurrent probe workers")
	cmd.Flags().StringVar(&flags.jsonOut, "json-out", "", "Report path (default reports/modbus_batch/modbus_scan_<ts>.json)")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "YAML configuration file")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "Also write log output to this file")
	cmd.Flags().BoolVar(&flags.verbose, "verbose", false, "Verbose output")
	cmd.MarkFlagRequired("targets")

	return cmd
}

func runModbus(cmd *cobra.Command, flags *modbusFlags) error {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}
	// Explicit flags win over config file values.
	if !cmd.Flags().Changed("port") {
		flags.port = cfg.Modbus.Port
	}
	if !cmd.Flags().Changed("unit") {
		flags.unitID = cfg.Modbus.UnitID
	}
	if !cmd.Flags().Changed("timeout") {
		flags.timeout = cfg.Modbus.Timeout()
	}
	if !cmd.Flags().Changed("workers") {
		flags.workers = cfg.Modbus.Workers
	}

	logger, err := newLogger(flags.verbose, flags.logFile)
	if err != nil {
		return err
	}
	defer logger.Close()

	hosts, err := target.Expand(flags.targets)
	if err != nil {
		return errors.WrapTargetError(err, flags.targets)
	}
	if len(hosts) == 0 {
		return errors.WrapTargetError(fmt.Errorf("no targets after expansion"), flags.targets)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.LogScanStart(len(hosts), flags.port, flags.unitID, flags.workers)

	sweep := progress.NewSweep(len(hosts), "modbus")
	if flags.verbose {
		// Verbose per-probe log lines and a redrawing counter do not mix.
		sweep.Disable()
	}
	prober := probe.Prober{
		Port:    flags.port,
		UnitID:  flags.unitID,
		Timeout: flags.timeout,
		Logger:  logger,
		Sweep:   sweep,
	}
	results := prober.Scan(ctx, hosts, flags.workers)

	acc := aggregate.NewProbeAccumulator()
	for _, res := range results {
		acc.Add(res)
	}

	meta := report.ScanMeta{
		GeneratedAt: report.FormatTimestamp(),
		Targets:     hosts,
		Port:        flags.port,
		UnitID:      flags.unitID,
		TimeoutMS:   flags.timeout.Milliseconds(),
	}
	doc := report.NewScanDocument(meta, results, acc.Summary())

	outPath := flags.jsonOut
	if outPath == "" {
		name := fmt.Sprintf("modbus_scan_%s.json", time.Now().UTC().Format("20060102_150405"))
		outPath = filepath.Join(cfg.ReportsDir, "modbus_batch", name)
	}
	if err := report.WriteJSONFile(outPath, doc); err != nil {
		return errors.WrapReportError(err, outPath)
	}

	logger.Info("Report written to %s", outPath)
	report.RenderScanSummary(os.Stdout, acc.Summary())
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func newLogger(verbose bool, logFile string) (*logging.Logger, error) {
	level := logging.LogLevelInfo
	if verbose {
		level = logging.LogLevelVerbose
	}
	return logging.NewLogger(level, logFile)
}
