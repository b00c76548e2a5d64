package main

// Shared runner for the passive capture analyzers. The S7Comm and DNP3
// commands differ only in their protocol descriptor, default port, and
// report directory.

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/config"
	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/errors"
	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/pcap"
	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/report"
)

type passiveFlags struct {
	pcapFile   string
	pcapDir    string
	jsonOut    string
	configPath string
	logFile    string
	verbose    bool
}

func registerPassiveFlags(cmd *cobra.Command, flags *passiveFlags) {
	cmd.Flags().StringVar(&flags.pcapFile, "pcap", "", "Capture file to analyze")
	cmd.Flags().StringVar(&flags.pcapDir, "pcap-dir", "", "Directory of capture files to analyze")
	cmd.Flags().StringVar(&flags.jsonOut, "json-out", "", "Report path for single-capture mode")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "YAML configuration file")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "Also write log output to this file")
	cmd.Flags().BoolVar(&flags.verbose, "verbose", false, "Verbose output")
	cmd.MarkFlagsMutuallyExclusive("pcap", "pcap-dir")
}

// runPassive analyzes one capture or a directory of captures with the
// given protocol descriptor and writes one report document per capture
// under batchDir. In directory mode a capture that fails to open is
// logged and skipped; only an empty batch is an error.
func runPassive(flags *passiveFlags, proto pcap.Protocol, portOf func(*config.Config) uint16, batchDir string) error {
	if flags.pcapFile == "" && flags.pcapDir == "" {
		return fmt.Errorf("either --pcap or --pcap-dir is required")
	}

	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}

	proto.Port = portOf(cfg)

	logger, err := newLogger(flags.verbose, flags.logFile)
	if err != nil {
		return err
	}
	defer logger.Close()

	outDir := filepath.Join(cfg.ReportsDir, batchDir)

	if flags.pcapFile != "" {
		analysis, err := proto.AnalyzeFile(flags.pcapFile)
		if err != nil {
			return errors.WrapCaptureError(err, flags.pcapFile)
		}
		outPath := flags.jsonOut
		if outPath == "" {
			outPath = filepath.Join(outDir, reportName(flags.pcapFile))
		}
		if err := writePassiveReport(proto, flags.pcapFile, outPath, analysis); err != nil {
			return err
		}
		logger.LogCapture(flags.pcapFile, analysis.Summary.TotalPackets,
			analysis.Summary.ProtocolPackets, analysis.Summary.SuspectFunctions)
		logger.Info("Report written to %s", outPath)
		report.RenderRunSummary(os.Stdout, proto.Name, analysis.Summary)
		return nil
	}

	files, err := pcap.CollectFiles(flags.pcapDir)
	if err != nil {
		return errors.WrapCaptureError(err, flags.pcapDir)
	}
	if len(files) == 0 {
		return errors.WrapCaptureError(fmt.Errorf("no capture files found"), flags.pcapDir)
	}

	processed, skipped := 0, 0
	for _, file := range files {
		analysis, err := proto.AnalyzeFile(file)
		if err != nil {
			logger.Error("Skipping %s: %v", file, err)
			skipped++
			continue
		}
		outPath := filepath.Join(outDir, reportName(file))
		if err := writePassiveReport(proto, file, outPath, analysis); err != nil {
			return err
		}
		logger.LogCapture(file, analysis.Summary.TotalPackets,
			analysis.Summary.ProtocolPackets, analysis.Summary.SuspectFunctions)
		processed++
	}
	logger.Info("Processed %d capture(s), skipped %d, reports in %s", processed, skipped, outDir)
	return nil
}

func writePassiveReport(proto pcap.Protocol, pcapFile, outPath string, analysis *pcap.Analysis) error {
	doc, err := report.NewPassiveDocument(proto.Name, pcapFile, proto.Filter(), analysis.Records, analysis.Summary)
	if err != nil {
		return err
	}
	if err := report.WriteJSONFile(outPath, doc); err != nil {
		return errors.WrapReportError(err, outPath)
	}
	return nil
}

// reportName maps pathto/capture.pcapng to capture.json.
func reportName(pcapPath string) string {
	base := filepath.Base(pcapPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
}
