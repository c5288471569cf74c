package domain

import "iter"

// Grouping maps each LDU to its teams. LDUs iterate in the order they were
// first added and teams keep the order they were appended in.
type Grouping struct {
	order []Ldu
	teams map[Ldu][]Team
}

func NewGrouping() *Grouping {
	return &Grouping{teams: make(map[Ldu][]Team)}
}

// Add appends team to the LDU's list, registering the LDU on first use.
// Duplicate teams are kept.
func (g *Grouping) Add(ldu Ldu, team Team) {
	if _, ok := g.teams[ldu]; !ok {
		g.order = append(g.order, ldu)
	}
	g.teams[ldu] = append(g.teams[ldu], team)
}

// Teams returns the teams recorded for ldu, or nil.
func (g *Grouping) Teams(ldu Ldu) []Team {
	return g.teams[ldu]
}

// Ldus returns the LDUs in first-seen order.
func (g *Grouping) Ldus() []Ldu {
	out := make([]Ldu, len(g.order))
	copy(out, g.order)
	return out
}

func (g *Grouping) Len() int {
	return len(g.order)
}

// All yields every LDU with its teams in first-seen order.
func (g *Grouping) All() iter.Seq2[Ldu, []Team] {
	return func(yield func(Ldu, []Team) bool) {
		for _, ldu := range g.order {
			if !yield(ldu, g.teams[ldu]) {
				return
			}
		}
	}
}
