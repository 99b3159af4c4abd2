// Package ui models display regions and the registration of interaction
// handlers, independent of any rendering surface.
package ui

import (
	"fmt"
	"sync"

	"studyenglish/internal/render"
)

// Region is a display area owned by exactly one widget. Each write
// replaces the previous contents wholesale.
type Region interface {
	Replace(f render.Fragment)
}

// Appender is a display area that grows, such as the chat log.
type Appender interface {
	Append(f render.Fragment)
}

// RegionFunc adapts a function to Region
type RegionFunc func(f render.Fragment)

func (fn RegionFunc) Replace(f render.Fragment) { fn(f) }

// AppenderFunc adapts a function to Appender
type AppenderFunc func(f render.Fragment)

func (fn AppenderFunc) Append(f render.Fragment) { fn(f) }

// Policy decides which of several overlapping writes to a region wins.
type Policy string

const (
	// LatestRequest applies only results of the most recently started
	// request; results of superseded requests are dropped.
	LatestRequest Policy = "latest-request"
	// LastResponse applies every result as it arrives, so whichever
	// request completes last wins even if it was started first.
	LastResponse Policy = "last-response"
)

// ParsePolicy validates a policy name
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case LatestRequest, LastResponse:
		return Policy(s), nil
	default:
		return "", fmt.Errorf("unknown region policy %q", s)
	}
}

// Ticketer hands out tickets: regions bound to one request.
type Ticketer interface {
	Begin() Region
}

// Begin returns a ticket for r when r orders its writers, or r itself.
func Begin(r Region) Region {
	if t, ok := r.(Ticketer); ok {
		return t.Begin()
	}
	return r
}

// Guarded serializes writes to a region and applies a Policy to them.
type Guarded struct {
	inner  Region
	policy Policy

	mu      sync.Mutex
	issued  uint64
	dropped int
}

// NewGuarded wraps inner with policy
func NewGuarded(inner Region, policy Policy) *Guarded {
	if policy == "" {
		policy = LatestRequest
	}
	return &Guarded{inner: inner, policy: policy}
}

// Begin issues a new ticket; it supersedes every earlier one.
func (g *Guarded) Begin() Region {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.issued++
	return &ticket{g: g, seq: g.issued}
}

// Replace writes f as a fresh request of its own.
func (g *Guarded) Replace(f render.Fragment) {
	g.Begin().Replace(f)
}

// Dropped returns how many stale writes were discarded
func (g *Guarded) Dropped() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.dropped
}

type ticket struct {
	g   *Guarded
	seq uint64
}

func (t *ticket) Replace(f render.Fragment) {
	g := t.g
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.policy == LatestRequest && t.seq != g.issued {
		g.dropped++
		return
	}
	g.inner.Replace(f)
}
