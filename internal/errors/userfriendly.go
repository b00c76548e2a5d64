package errors

import (
	"fmt"
	"strings"
)

// UserFriendlyError provides user-friendly error messages with context and hints
type UserFriendlyError struct {
	Message string
	Reason  string
	Hint    string
	Try     string
	Err     error
}

func (e UserFriendlyError) Error() string {
	var buf strings.Builder
	buf.WriteString(e.Message)
	if e.Reason != "" {
		buf.WriteString("\n  Reason: " + e.Reason)
	}
	if e.Hint != "" {
		buf.WriteString("\n  Hint: " + e.Hint)
	}
	if e.Try != "" {
		buf.WriteString("\n  Try: " + e.Try)
	}
	if e.Err != nil {
		buf.WriteString("\n  Details: " + e.Err.Error())
	}
	return buf.String()
}

func (e UserFriendlyError) Unwrap() error {
	return e.Err
}

// WrapTargetError wraps target-expansion failures with user-friendly context
func WrapTargetError(err error, spec string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Failed to expand target list %q", spec),
		Reason:  "The @file target source could not be read",
		Hint:    "Targets accept a comma list, a CIDR block, or @file with one host per line",
		Try:     "iscanlite modbus --targets 192.168.0.10,192.168.0.11",
		Err:     err,
	}
}

// WrapCaptureError wraps capture-source failures with user-friendly context
func WrapCaptureError(err error, path string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Failed to read capture %s", path),
		Reason:  extractCaptureReason(err),
		Hint:    "The input must be a PCAP or PCAPNG file readable by libpcap",
		Try:     fmt.Sprintf("iscanlite s7 --pcap %s", path),
		Err:     err,
	}
}

// WrapConfigError wraps configuration errors with user-friendly context
func WrapConfigError(err error, configPath string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Configuration error in %s", configPath),
		Reason:  err.Error(),
		Hint:    "The config file is YAML with modbus/s7/dnp3 sections",
		Try:     fmt.Sprintf("iscanlite modbus --targets 10.0.0.1 --config %s", configPath),
		Err:     err,
	}
}

// WrapReportError wraps report-output failures with user-friendly context
func WrapReportError(err error, path string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Failed to write report %s", path),
		Reason:  "The output path could not be created or written",
		Hint:    "Check that the report directory exists and is writable",
		Err:     err,
	}
}

func extractCaptureReason(err error) string {
	errStr := err.Error()

	if strings.Contains(errStr, "No such file") || strings.Contains(errStr, "no such file") {
		return "The capture file does not exist"
	}
	if strings.Contains(errStr, "permission denied") {
		return "The capture file is not readable"
	}
	if strings.Contains(errStr, "bad dump file format") || strings.Contains(errStr, "unknown file format") {
		return "The file is not a valid PCAP/PCAPNG capture"
	}

	return "Capture could not be opened"
}
