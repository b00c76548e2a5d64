package dnp3

// Heuristic classifier for DNP3 payloads (TCP/UDP port 20000).
//
// The DNP3 application layer is not decoded; classification is an ASCII
// substring search over the raw payload. The rule table runs in a fixed
// order that encodes detection confidence and must not be reordered for
// stricter protocol semantics.

import (
	"bytes"

	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/model"
)

// Port is the DNP3 well-known port, served over both TCP and UDP.
const Port uint16 = 20000

// MinPayload is the smallest payload inspected by the classifier.
const MinPayload = 8

// Operation names produced by Classify.
const (
	OpRead              = "Read"
	OpWrite             = "Write"
	OpOperate           = "Operate"
	OpSelect            = "Select"
	OpEnableUnsolicited = "EnableUnsolicited"
	OpColdRestart       = "ColdRestart"
	OpWarmRestart       = "WarmRestart"
	OpClearRestart      = "ClearRestart"
	OpUnknown           = "UnknownDNP3"
)

// appRules is the ordered rule table: the first matching predicate decides
// the operation. Keeping it as an explicit list makes the precedence
// auditable and testable rule by rule.
var appRules = []struct {
	match func([]byte) bool
	op    string
}{
	{contains("READ"), OpRead},
	{contains("WRITE"), OpWrite},
	{contains("OPER"), OpOperate},
	{contains("SELECT"), OpSelect},
	{contains("UNSOL"), OpEnableUnsolicited},
	{both("COLD", "RESTART"), OpColdRestart},
	{both("WARM", "RESTART"), OpWarmRestart},
	{both("CLEAR", "RESTART"), OpClearRestart},
}

// hintTokens is the fixed token list scanned for hints, independent of the
// operation the rule table settles on.
var hintTokens = []string{"UNSOL", "OPER", "RESTART", "SELECT", "READ", "WRITE", "DNP"}

// suspectOps are the risk-relevant DNP3 operations: control, write,
// unsolicited reporting, and restarts.
var suspectOps = map[string]struct{}{
	OpOperate:           {},
	OpWrite:             {},
	OpEnableUnsolicited: {},
	OpColdRestart:       {},
	OpWarmRestart:       {},
	OpClearRestart:      {},
}

// Suspect reports whether an operation name is in the DNP3 suspect set.
func Suspect(op string) bool {
	_, ok := suspectOps[op]
	return ok
}

// Classify infers the DNP3 application function carried by a raw payload.
// Payloads shorter than MinPayload yield the UnknownDNP3 sentinel with no
// further inspection.
func Classify(payload []byte) model.Classification {
	if len(payload) < MinPayload {
		return model.Classification{Operation: OpUnknown, Hints: []string{}}
	}

	op := OpUnknown
	for _, rule := range appRules {
		if rule.match(payload) {
			op = rule.op
			break
		}
	}

	hints := []string{}
	for _, tok := range hintTokens {
		if bytes.Contains(payload, []byte(tok)) {
			hints = append(hints, tok)
		}
	}

	return model.Classification{Operation: op, Hints: hints, Suspect: Suspect(op)}
}

func contains(token string) func([]byte) bool {
	needle := []byte(token)
	return func(payload []byte) bool {
		return bytes.Contains(payload, needle)
	}
}

func both(a, b string) func([]byte) bool {
	first, second := []byte(a), []byte(b)
	return func(payload []byte) bool {
		return bytes.Contains(payload, first) && bytes.Contains(payload, second)
	}
}
