// Package worker runs the background cache warmer that keeps popular routes
// pre-ranked in the recommendation cache.
package worker

import (
	"context"
	"strings"

	"github.com/fly2any/alt-airports-api/config"
	"github.com/fly2any/alt-airports-api/engine"
	"github.com/fly2any/alt-airports-api/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Warmer periodically evaluates a configured list of routes so the first
// traveler asking for them gets a cache hit. Warming failures are logged and
// skipped; a bad route never stops the sweep.
type Warmer struct {
	eng  *engine.Engine
	cfg  config.WarmerConfig
	cron *cron.Cron
}

// NewWarmer creates a cache warmer. It does nothing until Start is called.
func NewWarmer(eng *engine.Engine, cfg config.WarmerConfig) *Warmer {
	return &Warmer{
		eng:  eng,
		cfg:  cfg,
		cron: cron.New(),
	}
}

// Start schedules the warming sweep and runs one immediately in the
// background. Disabled or route-less warmers start as a no-op.
func (w *Warmer) Start() error {
	if !w.cfg.Enabled || len(w.cfg.Routes) == 0 {
		logger.Info("Cache warmer disabled")
		return nil
	}

	if _, err := w.cron.AddFunc(w.cfg.CronSpec, w.WarmAll); err != nil {
		return err
	}
	w.cron.Start()
	go w.WarmAll()

	logger.Info("Cache warmer started", "routes", len(w.cfg.Routes), "schedule", w.cfg.CronSpec)
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (w *Warmer) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
}

// WarmAll sweeps every configured route once.
func (w *Warmer) WarmAll() {
	for _, route := range w.cfg.Routes {
		origin, destination, ok := splitRoute(route)
		if !ok {
			logger.WithField("route", route).Warn("Skipping malformed warmer route")
			continue
		}
		if err := w.eng.WarmRoute(context.Background(), origin, destination); err != nil {
			logger.WithFields(map[string]interface{}{
				"origin":      origin,
				"destination": destination,
			}).Warn("Route warming failed", "error", err)
			continue
		}
		logger.WithField("route", route).Debug("Route warmed")
	}
}

// splitRoute parses an "ORG-DST" pair.
func splitRoute(route string) (origin, destination string, ok bool) {
	parts := strings.Split(strings.TrimSpace(route), "-")
	if len(parts) != 2 {
		return "", "", false
	}
	origin = strings.TrimSpace(parts[0])
	destination = strings.TrimSpace(parts[1])
	if len(origin) != 3 || len(destination) != 3 || origin == destination {
		return "", "", false
	}
	return origin, destination, true
}
