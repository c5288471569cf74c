package sqlgen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ministryofjustice/fmb-sql/modules/mailbox/domain"
)

var ldu = domain.Ldu{ProbationAreaCode: "A1", LocalDeliveryUnitCode: "L1"}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		in   domain.Instruction
		want string
	}{
		{
			name: "ldu",
			in:   domain.InsertLdu{Ldu: ldu},
			want: "insert into local_delivery_unit2(local_delivery_unit_id, probation_area_code, local_delivery_unit_code, create_date_time, create_user_id) values ( md5(random()::text || clock_timestamp()::text)::uuid, 'A1', 'L1', now(), 'dev');",
		},
		{
			name: "ldu with mailbox",
			in:   domain.InsertLduWithFmb{Ldu: ldu, FunctionalMailbox: "x@y.com"},
			want: "insert into local_delivery_unit2(local_delivery_unit_id, probation_area_code, local_delivery_unit_code, functional_mailbox, create_date_time, create_user_id) values ( md5(random()::text || clock_timestamp()::text)::uuid, 'A1', 'L1', 'x@y.com', now(), 'dev');",
		},
		{
			name: "team lower-cases mailbox",
			in:   domain.InsertTeamWithFmb{Ldu: ldu, Team: domain.Team{TeamCode: "T1", FunctionalMailbox: "Team.One@Y.com"}},
			want: "insert into probation_team (local_delivery_unit_id, team_code, functional_mailbox) values ( (select local_delivery_unit_id from local_delivery_unit2 where probation_area_code = 'A1' and local_delivery_unit_code = 'L1'), 'T1', 'team.one@y.com');",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRender_SubstitutesVerbatim(t *testing.T) {
	got, err := Render(domain.InsertLdu{Ldu: domain.Ldu{ProbationAreaCode: "O'Brien", LocalDeliveryUnitCode: "L 1"}})
	require.NoError(t, err)
	require.Contains(t, got, "'O'Brien', 'L 1'")
}

func TestRender_UnknownInstruction(t *testing.T) {
	_, err := Render(nil)
	require.ErrorIs(t, err, ErrUnknownInstruction)
}

func TestRenderAll(t *testing.T) {
	out, err := RenderAll([]domain.Instruction{
		domain.InsertLdu{Ldu: ldu},
		domain.InsertTeamWithFmb{Ldu: ldu, Team: domain.Team{TeamCode: "T1", FunctionalMailbox: "a@b.c"}},
	})
	require.NoError(t, err)
	require.Len(t, out, 2)

	again, err := RenderAll([]domain.Instruction{
		domain.InsertLdu{Ldu: ldu},
		domain.InsertTeamWithFmb{Ldu: ldu, Team: domain.Team{TeamCode: "T1", FunctionalMailbox: "a@b.c"}},
	})
	require.NoError(t, err)
	require.Equal(t, out, again)

	_, err = RenderAll([]domain.Instruction{domain.InsertLdu{Ldu: ldu}, nil})
	require.ErrorIs(t, err, ErrUnknownInstruction)
}
