package search

import (
	"context"

	"github.com/poiesic/frontdesk/core"
)

// MatchMonitor provides hooks to observe matching.
// Implement this interface to trace why a matcher accepted or rejected a
// candidate.
type MatchMonitor interface {
	LocationScored(score LocationScore)
	LocationSelected(loc *core.Location, total int)
	LocalityResolved(locality string, score int, accepted bool)
	RolesFiltered(roles []string, before, after int)
	FAQScored(pair core.FAQPair, similarity float64, accepted bool)
}

// noopMonitor is a no-op implementation of MatchMonitor
type noopMonitor struct{}

var _ MatchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) LocationScored(_ LocationScore)              {}
func (n *noopMonitor) LocationSelected(_ *core.Location, _ int)    {}
func (n *noopMonitor) LocalityResolved(_ string, _ int, _ bool)    {}
func (n *noopMonitor) RolesFiltered(_ []string, _, _ int)          {}
func (n *noopMonitor) FAQScored(_ core.FAQPair, _ float64, _ bool) {}

type monitorKey struct{}

// ContextWithMonitor returns a context whose matcher calls report to monitor.
func ContextWithMonitor(ctx context.Context, monitor MatchMonitor) context.Context {
	return context.WithValue(ctx, monitorKey{}, monitor)
}

// MonitorFromContext returns the monitor attached to ctx, or nil.
func MonitorFromContext(ctx context.Context) MatchMonitor {
	m, _ := ctx.Value(monitorKey{}).(MatchMonitor)
	return m
}

func pickMonitor(ctx context.Context, fallback MatchMonitor) MatchMonitor {
	if m := MonitorFromContext(ctx); m != nil {
		return m
	}
	if fallback != nil {
		return fallback
	}
	return &noopMonitor{}
}
