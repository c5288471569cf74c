package services

import (
	"github.com/ministryofjustice/fmb-sql/modules/mailbox/domain"
)

// InstructionsForLdu decides what to persist for one LDU.
//
// The distinct lower-cased addresses across its teams pick the shape:
//
//   - none: nothing is persisted;
//   - one: the LDU is stored with that address and no team rows;
//   - several: the LDU is stored without an address, followed by one row per
//     team that has an address, in team order.
//
// Mailboxes are carried lower-cased in every instruction.
func InstructionsForLdu(ldu domain.Ldu, teams []domain.Team) []domain.Instruction {
	mailboxes := distinctMailboxes(teams)
	switch len(mailboxes) {
	case 0:
		return []domain.Instruction{}
	case 1:
		return []domain.Instruction{domain.InsertLduWithFmb{Ldu: ldu, FunctionalMailbox: mailboxes[0]}}
	default:
		out := make([]domain.Instruction, 0, len(teams)+1)
		out = append(out, domain.InsertLdu{Ldu: ldu})
		for _, team := range teams {
			if !team.HasMailbox() {
				continue
			}
			team.FunctionalMailbox = domain.NormalizeMailbox(team.FunctionalMailbox)
			out = append(out, domain.InsertTeamWithFmb{Ldu: ldu, Team: team})
		}
		return out
	}
}

// distinctMailboxes returns the lower-cased addresses in first-seen order.
func distinctMailboxes(teams []domain.Team) []string {
	seen := make(map[string]struct{}, len(teams))
	var out []string
	for _, team := range teams {
		mb := domain.NormalizeMailbox(team.FunctionalMailbox)
		if !domain.IsAddress(mb) {
			continue
		}
		if _, ok := seen[mb]; ok {
			continue
		}
		seen[mb] = struct{}{}
		out = append(out, mb)
	}
	return out
}

// Plan applies InstructionsForLdu to every LDU of g in grouping order.
func Plan(g *domain.Grouping) []domain.Instruction {
	var out []domain.Instruction
	for ldu, teams := range g.All() {
		out = append(out, InstructionsForLdu(ldu, teams)...)
	}
	return out
}
