package dnp3

import (
	"reflect"
	"testing"
)

// padded embeds s in a payload long enough to pass the length gate.
func padded(s string) []byte {
	p := make([]byte, 16)
	copy(p, s)
	return p
}

func TestClassifyTooShort(t *testing.T) {
	c := Classify([]byte("READ"))
	if c.Operation != OpUnknown {
		t.Errorf("Operation = %q, want %q", c.Operation, OpUnknown)
	}
	if len(c.Hints) != 0 {
		t.Errorf("Hints = %v, want empty", c.Hints)
	}
	if c.Suspect {
		t.Error("short payload must not be suspect")
	}
}

func TestClassifyOperations(t *testing.T) {
	tests := []struct {
		payload string
		want    string
		suspect bool
	}{
		{"READ g1v0", OpRead, false},
		{"WRITE g10", OpWrite, true},
		{"OPER CROB", OpOperate, true},
		{"SELECT pt3", OpSelect, false},
		{"UNSOL on", OpEnableUnsolicited, true},
		{"COLD RESTART", OpColdRestart, true},
		{"WARM RESTART", OpWarmRestart, true},
		{"CLEAR RESTART", OpClearRestart, true},
		{"nothing here", OpUnknown, false},
	}
	for _, tt := range tests {
		c := Classify(padded(tt.payload))
		if c.Operation != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.payload, c.Operation, tt.want)
		}
		if c.Suspect != tt.suspect {
			t.Errorf("Classify(%q) suspect = %v, want %v", tt.payload, c.Suspect, tt.suspect)
		}
	}
}

func TestClassifyRulePrecedence(t *testing.T) {
	// READ appears before UNSOL in the rule table; first match wins.
	c := Classify(padded("UNSOL READ"))
	if c.Operation != OpRead {
		t.Errorf("Operation = %q, want %q", c.Operation, OpRead)
	}
	// Hints still report both tokens.
	want := []string{"UNSOL", "READ"}
	if !reflect.DeepEqual(c.Hints, want) {
		t.Errorf("Hints = %v, want %v", c.Hints, want)
	}
}

func TestClassifyHintsIndependentOfOperation(t *testing.T) {
	c := Classify(padded("DNP WARM RESTART"))
	if c.Operation != OpWarmRestart {
		t.Errorf("Operation = %q, want %q", c.Operation, OpWarmRestart)
	}
	want := []string{"RESTART", "DNP"}
	if !reflect.DeepEqual(c.Hints, want) {
		t.Errorf("Hints = %v, want %v", c.Hints, want)
	}
}

func TestSuspectMatchesSet(t *testing.T) {
	for _, op := range []string{OpOperate, OpWrite, OpEnableUnsolicited, OpColdRestart, OpWarmRestart, OpClearRestart} {
		if !Suspect(op) {
			t.Errorf("Suspect(%q) = false, want true", op)
		}
	}
	for _, op := range []string{OpRead, OpSelect, OpUnknown} {
		if Suspect(op) {
			t.Errorf("Suspect(%q) = true, want false", op)
		}
	}
}
