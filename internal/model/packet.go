package model

// Classification is the outcome of running one raw payload through a
// protocol's ordered heuristic rule set. Operation is a protocol-specific
// name (or that protocol's unrecognized sentinel), Hints are the token
// sub-signals found in the payload, and Suspect is true only when Operation
// belongs to the protocol's fixed suspect set.
type Classification struct {
	Operation string
	Hints     []string
	Suspect   bool
}

// PacketRecord is the unit of passive analysis: one admitted frame after
// classification. Records are created once and never mutated.
type PacketRecord struct {
	Src      string   `json:"src"`
	Dst      string   `json:"dst"`
	Function string   `json:"function"`
	Length   int      `json:"length"`
	Hints    []string `json:"hints"`
	Suspect  bool     `json:"suspect"`
}
