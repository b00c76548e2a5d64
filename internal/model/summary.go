package model

// RunSummary is the sealed aggregate of one passive run over one capture.
// It is a value snapshot: once produced by an accumulator it has no
// mutation path, and renderers must treat it as read-only.
type RunSummary struct {
	TotalPackets     int
	ProtocolPackets  int
	SuspectFunctions int
	UniqueHosts      []string
}

// ScanRunSummary is the sealed aggregate of one active scan over one
// target list.
type ScanRunSummary struct {
	TotalProbed         int
	Reachable           int
	UnauthenticatedRead int
	BroadRegisterAccess int
	UniqueHosts         []string
}
