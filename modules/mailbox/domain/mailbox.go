// Package domain holds the functional mailbox data model: the records read
// from the spreadsheet, the LDU grouping key and the instructions the policy
// produces for each LDU.
package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MailboxSpec is one spreadsheet row after trimming.
type MailboxSpec struct {
	ProbationAreaCode     string
	LocalDeliveryUnitCode string
	TeamCode              string
	FunctionalMailbox     string
}

// Ldu returns the local delivery unit the row belongs to.
func (s MailboxSpec) Ldu() Ldu {
	return Ldu{ProbationAreaCode: s.ProbationAreaCode, LocalDeliveryUnitCode: s.LocalDeliveryUnitCode}
}

// Team returns the team part of the row.
func (s MailboxSpec) Team() Team {
	return Team{TeamCode: s.TeamCode, FunctionalMailbox: s.FunctionalMailbox}
}

// Complete reports whether all three codes are present. The mailbox may be empty.
func (s MailboxSpec) Complete() bool {
	return s.ProbationAreaCode != "" && s.LocalDeliveryUnitCode != "" && s.TeamCode != ""
}

// Ldu identifies a local delivery unit by probation area and LDU code.
type Ldu struct {
	ProbationAreaCode     string
	LocalDeliveryUnitCode string
}

func (l Ldu) String() string {
	return l.ProbationAreaCode + "/" + l.LocalDeliveryUnitCode
}

type Team struct {
	TeamCode          string
	FunctionalMailbox string
}

// HasMailbox reports whether the team's mailbox looks like an address.
func (t Team) HasMailbox() bool {
	return IsAddress(t.FunctionalMailbox)
}

// IsAddress reports whether s contains '@'. Anything else is "no mailbox".
func IsAddress(s string) bool {
	return strings.Contains(s, "@")
}

// NormalizeMailbox lower-cases a mailbox for comparison and storage.
func NormalizeMailbox(s string) string {
	return cases.Lower(language.Und).String(s)
}
