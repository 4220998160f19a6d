package app

import (
	"context"
	"fmt"
	"io"

	"github.com/vk/typeslots/internal/ctxlog"
)

// Run reports on the selected types, or lists every type when no selector
// was given.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.", "selectors", len(a.config.Selectors))

	if len(a.config.Selectors) == 0 {
		reports := make([]*typeReport, 0, a.registry.Len())
		for _, d := range a.registry.All() {
			reports = append(reports, summarize(a.registry, d))
		}
		logger.Info("Listing resolved types.", "count", len(reports))
		return a.write(reports, writeSummaryText)
	}

	reports := make([]*typeReport, 0, len(a.config.Selectors))
	for _, sel := range a.config.Selectors {
		d, err := a.lookup(sel)
		if err != nil {
			return err
		}
		logger.Debug("Selector resolved.", "selector", sel, "key", d.Key())
		reports = append(reports, describe(a.registry, d))
	}
	return a.write(reports, writeDetailText)
}

func (a *App) write(reports []*typeReport, text func(w io.Writer, reports []*typeReport) error) error {
	var err error
	if a.config.Output == OutputJSON {
		err = writeJSON(a.outW, reports)
	} else {
		err = text(a.outW, reports)
	}
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
