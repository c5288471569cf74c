package services

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ministryofjustice/fmb-sql/modules/mailbox/domain"
)

type Stage string

const (
	StageExtract Stage = "extract"
	StageRender  Stage = "render"
	StageWrite   Stage = "write"
)

// StageError records which pipeline stage failed.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Pipeline reads mailbox rows from Source, applies the LDU policy and hands
// the rendered statements to Sink.
type Pipeline struct {
	Source RowSource
	Sink   Sink
	Render func([]domain.Instruction) ([]string, error)
	Layout Layout
	Logger logrus.FieldLogger
}

type Result struct {
	RunID        uuid.UUID
	Rows         int
	Dropped      int
	Ldus         int
	Instructions int
}

// Run executes the pipeline once. Nothing reaches the sink unless extraction
// and rendering both succeed.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	res := Result{RunID: uuid.New()}
	log := p.logger().WithField("run_id", res.RunID.String())

	g, stats, err := GroupByLduWithStats(Extract(p.Source, p.Layout))
	if err != nil {
		log.WithError(err).Error("mailbox.extract.failed")
		return res, &StageError{Stage: StageExtract, Err: err}
	}
	res.Rows, res.Dropped, res.Ldus = stats.Read, stats.Dropped, g.Len()
	log.WithFields(logrus.Fields{
		"sheets":  len(p.Layout.Sheets),
		"rows":    stats.Read,
		"dropped": stats.Dropped,
		"ldus":    g.Len(),
	}).Info("mailbox.extract.done")

	if err := ctx.Err(); err != nil {
		return res, err
	}

	instructions := Plan(g)
	res.Instructions = len(instructions)
	statements, err := p.Render(instructions)
	if err != nil {
		log.WithError(err).Error("mailbox.render.failed")
		return res, &StageError{Stage: StageRender, Err: err}
	}
	log.WithField("instructions", len(instructions)).Debug("mailbox.render.done")

	if err := ctx.Err(); err != nil {
		return res, err
	}

	if err := p.Sink.Write(ctx, statements); err != nil {
		log.WithError(err).Error("mailbox.write.failed")
		return res, &StageError{Stage: StageWrite, Err: err}
	}
	log.WithField("statements", len(statements)).Info("mailbox.write.done")
	return res, nil
}

func (p *Pipeline) logger() logrus.FieldLogger {
	if p.Logger != nil {
		return p.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
