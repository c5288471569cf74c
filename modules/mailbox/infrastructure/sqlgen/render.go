// Package sqlgen renders LDU instructions as PostgreSQL insert statements.
//
// Field values are substituted verbatim. Nothing is quoted or escaped, so the
// output is only safe for trusted spreadsheets.
package sqlgen

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/ministryofjustice/fmb-sql/modules/mailbox/domain"
)

var ErrUnknownInstruction = errors.New("unknown instruction")

const (
	insertLduSQL = "insert into local_delivery_unit2(local_delivery_unit_id, probation_area_code, local_delivery_unit_code, create_date_time, create_user_id) " +
		"values ( md5(random()::text || clock_timestamp()::text)::uuid, '%s', '%s', now(), 'dev');"

	insertLduWithFmbSQL = "insert into local_delivery_unit2(local_delivery_unit_id, probation_area_code, local_delivery_unit_code, functional_mailbox, create_date_time, create_user_id) " +
		"values ( md5(random()::text || clock_timestamp()::text)::uuid, '%s', '%s', '%s', now(), 'dev');"

	insertTeamWithFmbSQL = "insert into probation_team (local_delivery_unit_id, team_code, functional_mailbox) " +
		"values ( (select local_delivery_unit_id from local_delivery_unit2 where probation_area_code = '%s' and local_delivery_unit_code = '%s'), '%s', '%s');"
)

// Render returns the statement for a single instruction.
func Render(in domain.Instruction) (string, error) {
	switch i := in.(type) {
	case domain.InsertLdu:
		return fmt.Sprintf(insertLduSQL, i.Ldu.ProbationAreaCode, i.Ldu.LocalDeliveryUnitCode), nil
	case domain.InsertLduWithFmb:
		return fmt.Sprintf(insertLduWithFmbSQL,
			i.Ldu.ProbationAreaCode, i.Ldu.LocalDeliveryUnitCode, i.FunctionalMailbox), nil
	case domain.InsertTeamWithFmb:
		return fmt.Sprintf(insertTeamWithFmbSQL,
			i.Ldu.ProbationAreaCode, i.Ldu.LocalDeliveryUnitCode,
			i.Team.TeamCode, domain.NormalizeMailbox(i.Team.FunctionalMailbox)), nil
	default:
		return "", errors.Wrapf(ErrUnknownInstruction, "%T", in)
	}
}

// RenderAll renders instructions in order and stops at the first failure.
func RenderAll(ins []domain.Instruction) ([]string, error) {
	out := make([]string, 0, len(ins))
	for _, in := range ins {
		s, err := Render(in)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
