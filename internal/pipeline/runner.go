package pipeline

import (
	"context"
	"fmt"
	"log"

	"MarketBoard/internal/collector"
	"MarketBoard/internal/model"
	"MarketBoard/internal/publisher"
	"MarketBoard/internal/recorder"
	"MarketBoard/internal/report"
)

// Runner drives the pipeline over the configured ticker groups, strictly in
// sequence: fetch, build charts, publish, record.
type Runner struct {
	Collector *collector.Collector
	Publisher *publisher.Publisher
	Recorder  recorder.Recorder
	Period    string
}

// NewRunner creates a new Runner.
func NewRunner(col *collector.Collector, pub *publisher.Publisher, rec recorder.Recorder, period string) *Runner {
	return &Runner{Collector: col, Publisher: pub, Recorder: rec, Period: period}
}

// Run processes each group in order. A group whose every symbol failed is
// skipped without error; a publish failure (meaning even the local fallback
// write failed) aborts the run.
func (r *Runner) Run(ctx context.Context, groups []model.TickerGroup) error {
	for _, group := range groups {
		log.Printf("[INFO] fetching financial data for %s", group.Name)

		ds := r.Collector.CollectGroup(group.Symbols, r.Period)
		if ds.Empty() {
			log.Printf("[WARN] no data for group %s, skipping dashboard", group.Name)
			continue
		}

		charts := report.BuildCharts(ds, group.Name, r.Period)
		result, err := r.Publisher.Publish(ctx, charts, group.Name, r.Period)
		if err != nil {
			return fmt.Errorf("publish %s: %w", group.Name, err)
		}

		if err := r.Recorder.RecordPublish(&recorder.PublishEvent{
			Group:     group.Name,
			Period:    r.Period,
			ObjectKey: result.Key,
			Location:  result.Location,
			Fallback:  result.Fallback,
			Bytes:     result.Bytes,
			Charts:    len(charts),
		}); err != nil {
			log.Printf("[ERROR] record publish: %v", err)
		}
	}
	return nil
}
