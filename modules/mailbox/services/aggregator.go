package services

import (
	"iter"

	"github.com/ministryofjustice/fmb-sql/modules/mailbox/domain"
)

// Stats counts the records seen by GroupByLduWithStats.
type Stats struct {
	Read    int
	Dropped int
}

// GroupByLdu drops records missing an area, LDU or team code and groups the
// rest by LDU. The first extraction error aborts grouping.
func GroupByLdu(specs iter.Seq2[domain.MailboxSpec, error]) (*domain.Grouping, error) {
	g, _, err := GroupByLduWithStats(specs)
	return g, err
}

func GroupByLduWithStats(specs iter.Seq2[domain.MailboxSpec, error]) (*domain.Grouping, Stats, error) {
	var stats Stats
	g := domain.NewGrouping()
	for spec, err := range specs {
		if err != nil {
			return nil, stats, err
		}
		stats.Read++
		if !spec.Complete() {
			stats.Dropped++
			continue
		}
		g.Add(spec.Ldu(), spec.Team())
	}
	return g, stats, nil
}
