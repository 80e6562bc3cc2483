// Package export turns validated delivery records into planning tasks.
// Records missing a customer reference or address line are reported as
// per-record failures instead of failing the batch.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/routeworks/docscan/internal/model"
)

// TaskResult is the outcome for one exported delivery.
type TaskResult struct {
	TaskID      string `json:"taskId"`
	CustomerRef string `json:"customerRef"`
	Status      string `json:"status"` // "created" or "failed"
	Error       string `json:"error,omitempty"`
}

// Summary reports a whole export batch.
type Summary struct {
	Success         bool         `json:"success"`
	TotalDeliveries int          `json:"totalDeliveries"`
	Successful      int          `json:"successful"`
	Failed          int          `json:"failed"`
	Results         []TaskResult `json:"results"`
	Errors          []string     `json:"errors,omitempty"`
	Timestamp       time.Time    `json:"timestamp"`
}

// Sink receives created tasks. The production sink writes planning tasks;
// tests substitute their own.
type Sink interface {
	CreateTask(ctx context.Context, rec model.DeliveryRecord) error
}

// Exporter validates records and pushes them to a Sink.
type Exporter struct {
	sink Sink
	now  func() time.Time
}

// Option customizes an Exporter.
type Option func(*Exporter)

// WithClock replaces the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) { e.now = now }
}

// New builds an Exporter over the given sink.
func New(sink Sink, opts ...Option) *Exporter {
	e := &Exporter{sink: sink, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export pushes each record through validation and the sink. The batch
// succeeds when at least one record was created.
func (e *Exporter) Export(ctx context.Context, records []model.DeliveryRecord) Summary {
	sum := Summary{
		TotalDeliveries: len(records),
		Results:         make([]TaskResult, 0, len(records)),
		Timestamp:       e.now(),
	}

	for i, rec := range records {
		res := TaskResult{TaskID: rec.TaskID, CustomerRef: rec.CustomerRef}
		if err := validate(rec); err != nil {
			res.Status = "failed"
			res.Error = err.Error()
			sum.Failed++
			sum.Errors = append(sum.Errors, fmt.Sprintf("delivery %d: %s", i+1, err.Error()))
			sum.Results = append(sum.Results, res)
			continue
		}
		if err := e.sink.CreateTask(ctx, rec); err != nil {
			zap.S().Warnw("task creation failed", "taskId", rec.TaskID, "error", err)
			res.Status = "failed"
			res.Error = err.Error()
			sum.Failed++
			sum.Errors = append(sum.Errors, fmt.Sprintf("delivery %d: %s", i+1, err.Error()))
			sum.Results = append(sum.Results, res)
			continue
		}
		res.Status = "created"
		sum.Successful++
		sum.Results = append(sum.Results, res)
	}

	sum.Success = sum.Successful > 0
	return sum
}

func validate(rec model.DeliveryRecord) error {
	if rec.CustomerRef == "" {
		return eris.New("missing customer reference")
	}
	if rec.DeliveryAddress.Line1 == "" || rec.DeliveryAddress.Line1 == model.AddressNotFound {
		return eris.New("missing delivery address")
	}
	return nil
}

// LogSink is the default Sink: it records created tasks in the log. It
// stands in until a real planning system integration exists.
type LogSink struct{}

func (LogSink) CreateTask(_ context.Context, rec model.DeliveryRecord) error {
	zap.S().Infow("task created",
		"taskId", rec.TaskID,
		"customerRef", rec.CustomerRef,
		"address", rec.DeliveryAddress.Line1,
		"serviceDate", rec.ServiceDate,
	)
	return nil
}
