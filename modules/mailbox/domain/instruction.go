package domain

// Instruction is a persistence step for one LDU. The set of implementations
// is closed: InsertLdu, InsertLduWithFmb and InsertTeamWithFmb.
type Instruction interface {
	instruction()
}

// InsertLdu persists an LDU without a mailbox of its own.
type InsertLdu struct {
	Ldu Ldu
}

// InsertLduWithFmb persists an LDU carrying the single mailbox shared by all its teams.
type InsertLduWithFmb struct {
	Ldu               Ldu
	FunctionalMailbox string
}

// InsertTeamWithFmb persists a team of an LDU with the team's own mailbox.
type InsertTeamWithFmb struct {
	Ldu  Ldu
	Team Team
}

func (InsertLdu) instruction()         {}
func (InsertLduWithFmb) instruction()  {}
func (InsertTeamWithFmb) instruction() {}
