package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ministryofjustice/fmb-sql/modules/mailbox/infrastructure/sqlfile"
	"github.com/ministryofjustice/fmb-sql/modules/mailbox/infrastructure/sqlgen"
	"github.com/ministryofjustice/fmb-sql/modules/mailbox/infrastructure/xlsx"
	"github.com/ministryofjustice/fmb-sql/modules/mailbox/services"
)

func runGenerate(ctx context.Context, layout services.Layout, logger *logrus.Logger) (services.Result, error) {
	wb, err := xlsx.Open(layout.Input)
	if err != nil {
		return services.Result{}, &services.StageError{Stage: services.StageExtract, Err: err}
	}
	defer func() {
		if err := wb.Close(); err != nil {
			logger.WithError(err).Warn("workbook close failed")
		}
	}()

	p := &services.Pipeline{
		Source: wb,
		Sink:   &sqlfile.Writer{Path: layout.Output},
		Render: sqlgen.RenderAll,
		Layout: layout,
		Logger: logger.WithField("input", layout.Input),
	}
	res, err := p.Run(ctx)
	if err != nil {
		return res, err
	}
	logger.WithFields(logrus.Fields{
		"run_id":       res.RunID.String(),
		"output":       layout.Output,
		"ldus":         res.Ldus,
		"instructions": res.Instructions,
	}).Info("functional mailbox SQL written")
	return res, nil
}
