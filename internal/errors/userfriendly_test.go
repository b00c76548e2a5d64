package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestUserFriendlyError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      UserFriendlyError
		contains []string
	}{
		{
			name:     "message only",
			err:      UserFriendlyError{Message: "something broke"},
			contains: []string{"something broke"},
		},
		{
			name: "all fields",
			err: UserFriendlyError{
				Message: "connection failed",
				Reason:  "timeout",
				Hint:    "check network",
				Try:     "ping host",
				Err:     fmt.Errorf("dial tcp: timeout"),
			},
			contains: []string{"connection failed", "Reason: timeout", "Hint: check network", "Try: ping host", "Details: dial tcp: timeout"},
		},
		{
			name: "no reason",
			err: UserFriendlyError{
				Message: "failed",
				Hint:    "hint here",
			},
			contains: []string{"failed", "Hint: hint here"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("Error() = %q, want to contain %q", msg, s)
				}
			}
		})
	}
}

func TestUserFriendlyError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner failure")
	wrapped := WrapCaptureError(inner, "traffic.pcap")
	if !errors.Is(wrapped, inner) {
		t.Error("wrapped error should unwrap to inner error")
	}
}

func TestWrapNilReturnsNil(t *testing.T) {
	if WrapTargetError(nil, "spec") != nil {
		t.Error("WrapTargetError(nil) should be nil")
	}
	if WrapCaptureError(nil, "x.pcap") != nil {
		t.Error("WrapCaptureError(nil) should be nil")
	}
	if WrapConfigError(nil, "cfg.yaml") != nil {
		t.Error("WrapConfigError(nil) should be nil")
	}
	if WrapReportError(nil, "out.json") != nil {
		t.Error("WrapReportError(nil) should be nil")
	}
}

func TestExtractCaptureReason(t *testing.T) {
	tests := []struct {
		errStr string
		want   string
	}{
		{"traffic.pcap: No such file or directory", "does not exist"},
		{"open traffic.pcap: permission denied", "not readable"},
		{"bad dump file format", "not a valid PCAP"},
		{"weird failure", "could not be opened"},
	}
	for _, tt := range tests {
		got := extractCaptureReason(fmt.Errorf("%s", tt.errStr))
		if !strings.Contains(got, tt.want) {
			t.Errorf("extractCaptureReason(%q) = %q, want to contain %q", tt.errStr, got, tt.want)
		}
	}
}
