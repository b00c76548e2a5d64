package s7

// Heuristic classifier for Siemens S7Comm payloads.
//
// S7Comm is not decoded byte-for-byte: classification trades precision for
// coverage. Rules run in a fixed order that encodes detection confidence,
// not protocol semantics, and the order is deliberate (tuned against sample
// captures). Size/token rules fire before the function-code table, which
// fires before the loose byte-presence fallbacks.

import (
	"bytes"

	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/model"
)

// Port is the S7Comm well-known TCP port. S7Comm is stream-only.
const Port uint16 = 102

// MinPayload is the smallest payload considered an S7 PDU.
const MinPayload = 10

// marker is the S7Comm PDU leading byte.
const marker = 0x32

// Operation names produced by Classify.
const (
	OpNonS7Payload   = "NonS7Payload"
	OpDownloadBlock  = "DownloadBlock"
	OpFirmwareUpdate = "FirmwareUpdate"
	OpCopyRamToRom   = "CopyRamToRom"
	OpReadVar        = "ReadVar"
	OpWriteVar       = "WriteVar"
	OpStart          = "Start"
	OpStop           = "Stop"
	OpSetupComm      = "SetupComm"
	OpUnknown        = "Unknown"
)

// funcCodes maps the second payload byte to a function name. The function
// parameter is not always at this offset, so this is an indicator, not a
// decode; the size/token rules above it take precedence.
var funcCodes = map[byte]string{
	0x02: OpStart,
	0x03: OpStop,
	0x04: OpReadVar,
	0x05: OpWriteVar,
	0xF0: OpSetupComm,
}

// blockTokens are ASCII block names seen inside captured S7 payloads.
// They drive both the DownloadBlock rule and the hint set.
var blockTokens = []string{"OB1", "OB", "DB", "FB", "FC", "System", "PLC", "Firmware", "Update"}

// suspectOps are the risk-relevant S7 operations: state-changing, block
// download, or firmware-level actions.
var suspectOps = map[string]struct{}{
	OpWriteVar:       {},
	OpStart:          {},
	OpStop:           {},
	OpDownloadBlock:  {},
	OpCopyRamToRom:   {},
	OpFirmwareUpdate: {},
}

// Suspect reports whether an operation name is in the S7 suspect set.
// This is the only way the suspect flag is ever computed.
func Suspect(op string) bool {
	_, ok := suspectOps[op]
	return ok
}

// Classify infers the S7 operation carried by a raw payload. Payloads that
// are too short or lack the 0x32 marker yield the NonS7Payload sentinel
// with no further inspection.
func Classify(payload []byte) model.Classification {
	if len(payload) < MinPayload || payload[0] != marker {
		return model.Classification{Operation: OpNonS7Payload, Hints: []string{}}
	}

	op := guessOperation(payload)
	return model.Classification{
		Operation: op,
		Hints:     collectHints(payload),
		Suspect:   Suspect(op),
	}
}

// guessOperation applies the ordered rule chain. First match wins.
func guessOperation(payload []byte) string {
	big := len(payload) >= 200
	huge := len(payload) >= 800

	// Block references in a large packet indicate a block download.
	if big && containsAnyToken(payload) {
		return OpDownloadBlock
	}

	// Very large packet with firmware/update markers.
	if huge && (bytes.Contains(payload, []byte("Firmware")) || bytes.Contains(payload, []byte("Update"))) {
		return OpFirmwareUpdate
	}

	// Copy RAM to ROM has no fixed signature; rely on token pairing.
	if big && bytes.Contains(payload, []byte("Copy")) && bytes.Contains(payload, []byte("Rom")) {
		return OpCopyRamToRom
	}

	if op, ok := funcCodes[payload[1]]; ok {
		return op
	}

	// Item/var parameter bytes anywhere in the payload, write before read.
	if bytes.IndexByte(payload, 0x05) >= 0 {
		return OpWriteVar
	}
	if bytes.IndexByte(payload, 0x04) >= 0 {
		return OpReadVar
	}

	return OpUnknown
}

func containsAnyToken(payload []byte) bool {
	for _, tok := range blockTokens {
		if bytes.Contains(payload, []byte(tok)) {
			return true
		}
	}
	return false
}

// collectHints reports every block token literally present in the payload,
// independent of which rule matched. Token order is fixed so the hint list
// is deterministic.
func collectHints(payload []byte) []string {
	hints := []string{}
	for _, tok := range blockTokens {
		if bytes.Contains(payload, []byte(tok)) {
			hints = append(hints, tok)
		}
	}
	return hints
}
