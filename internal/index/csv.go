package index

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// WriteCSVFile exports one row per protocol roll-up. The column set
// mirrors the global index JSON so spreadsheet consumers see the same
// totals the JSON carries.
func WriteCSVFile(path string, idx GlobalIndex) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create csv directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{
		"Protocol", "Runs_Processed", "Total_Packets",
		"Protocol_Packets", "Suspect_Functions", "Skipped",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, p := range idx.Protocols {
		record := []string{
			p.Protocol,
			strconv.Itoa(p.RunsProcessed),
			strconv.Itoa(p.TotalPackets),
			strconv.Itoa(p.ProtocolPackets),
			strconv.Itoa(p.SuspectFunctions),
			strconv.Itoa(len(p.Skipped)),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
