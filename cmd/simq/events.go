// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"math/rand"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/entity/arena"
	"cloudeng.io/entity/component"
	"cloudeng.io/entity/queue"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sync/errgroup"
	"gopkg.in/yaml.v3"
)

type eventsFlags struct {
	cmdutil.LoggingFlags
	Replicas int `subcmd:"replicas,1,number of concurrent replicas of the workload to run"`
}

// workloadConfig describes an event workload. Deadlines are virtual
// clock ticks rather than wall clock times.
type workloadConfig struct {
	Seed    int64         `yaml:"seed" cmd:"seed for the action generator"`
	Steps   int           `yaml:"steps" cmd:"number of actions to run"`
	Initial int           `yaml:"initial" cmd:"number of events scheduled before the run starts"`
	Horizon int           `yaml:"horizon" cmd:"upper bound for generated deadlines, in ticks from now"`
	Actions actionWeights `yaml:"actions" cmd:"relative weights for each action kind"`
}

// actionWeights holds the relative probability of each action kind.
// Omitted weights default to 1 so a config need only mention the
// actions it wants to skew.
type actionWeights struct {
	Schedule int `yaml:"schedule" cmd:"weight for scheduling a new event"`
	Cancel   int `yaml:"cancel" cmd:"weight for canceling a pending event"`
	Advance  int `yaml:"advance" cmd:"weight for moving a deadline earlier"`
	Postpone int `yaml:"postpone" cmd:"weight for moving a deadline later"`
}

func (w *actionWeights) UnmarshalYAML(node *yaml.Node) error {
	type raw actionWeights
	r := raw{Schedule: 1, Cancel: 1, Advance: 1, Postpone: 1}
	if err := node.Decode(&r); err != nil {
		return err
	}
	*w = actionWeights(r)
	return nil
}

func (w actionWeights) total() int {
	return w.Schedule + w.Cancel + w.Advance + w.Postpone
}

type action int

const (
	actionSchedule action = iota
	actionCancel
	actionAdvance
	actionPostpone
)

func (w actionWeights) pick(rnd *rand.Rand) action {
	n := rnd.Intn(w.total())
	switch {
	case n < w.Schedule:
		return actionSchedule
	case n < w.Schedule+w.Cancel:
		return actionCancel
	case n < w.Schedule+w.Cancel+w.Advance:
		return actionAdvance
	default:
		return actionPostpone
	}
}

// defaultWorkloadConfig returns the configuration used for fields the
// yaml omits entirely. An omitted actions key never reaches
// UnmarshalYAML, so the weights are defaulted here as well.
func defaultWorkloadConfig() *workloadConfig {
	return &workloadConfig{
		Horizon: 16,
		Actions: actionWeights{Schedule: 1, Cancel: 1, Advance: 1, Postpone: 1},
	}
}

func (c *workloadConfig) validate() error {
	errs := errors.M{}
	if c.Steps <= 0 {
		errs.Append(fmt.Errorf("steps must be positive: %v", c.Steps))
	}
	if c.Initial < 0 {
		errs.Append(fmt.Errorf("initial may not be negative: %v", c.Initial))
	}
	if c.Horizon <= 0 {
		errs.Append(fmt.Errorf("horizon must be positive: %v", c.Horizon))
	}
	for _, w := range []struct {
		name   string
		weight int
	}{
		{"schedule", c.Actions.Schedule},
		{"cancel", c.Actions.Cancel},
		{"advance", c.Actions.Advance},
		{"postpone", c.Actions.Postpone},
	} {
		if w.weight < 0 {
			errs.Append(fmt.Errorf("action weight %v may not be negative: %v", w.name, w.weight))
		}
	}
	if err := errs.Err(); err != nil {
		return err
	}
	if c.Actions.total() == 0 {
		return fmt.Errorf("action weights sum to zero")
	}
	return nil
}

type event struct{}

// workload is one replica's event state. The min queue orders pending
// events by deadline, the max queue tracks the most distant scheduled
// deadline, and pos maps each live identifier to its position in the
// live slice so cancellation can pick uniformly at random.
type workload struct {
	cfg     *workloadConfig
	rnd     *rand.Rand
	alloc   *arena.T[event]
	pending *queue.Min[event, int]
	horizon *queue.Max[event, int]
	live    []arena.ID[event]
	pos     *component.Map[int]
	now     int
	stats   workloadStats
}

type workloadStats struct {
	scheduled int
	fired     int
	canceled  int
	advanced  int
	postponed int
}

func newWorkload(cfg *workloadConfig, seed int64) *workload {
	return &workload{
		cfg:     cfg,
		rnd:     rand.New(rand.NewSource(seed)), // #nosec: G404
		alloc:   arena.New[event](),
		pending: queue.NewMin[event, int](queue.WithSliceCap(cfg.Initial)),
		horizon: queue.NewMax[event, int](queue.WithSliceCap(cfg.Initial)),
		pos:     component.New[int](cfg.Initial),
	}
}

func (w *workload) remember(id arena.ID[event]) {
	w.pos.Insert(id.Raw(), len(w.live))
	w.live = append(w.live, id)
}

func (w *workload) forget(id arena.ID[event]) {
	p, ok := w.pos.Lookup(id.Raw())
	if !ok {
		return
	}
	last := len(w.live) - 1
	moved := w.live[last]
	w.live[p] = moved
	w.live = w.live[:last]
	w.pos.Delete(id.Raw())
	if p != last {
		w.pos.Insert(moved.Raw(), p)
	}
	w.alloc.Free(id)
}

func (w *workload) deadline() int {
	return w.now + 1 + w.rnd.Intn(w.cfg.Horizon)
}

func (w *workload) schedule() {
	id := w.alloc.NewID()
	deadline := w.deadline()
	w.pending.Insert(id, deadline)
	w.horizon.Insert(id, deadline)
	w.remember(id)
	w.stats.scheduled++
}

func (w *workload) cancel() {
	if len(w.live) == 0 {
		return
	}
	id := w.live[w.rnd.Intn(len(w.live))]
	w.pending.Remove(id)
	w.horizon.Remove(id)
	w.forget(id)
	w.stats.canceled++
}

// advance moves a random event's deadline earlier. Both queues apply
// the change only if the new deadline is strictly earlier, so they
// cannot drift apart.
func (w *workload) advance() {
	if len(w.live) == 0 {
		return
	}
	id := w.live[w.rnd.Intn(len(w.live))]
	deadline := w.deadline()
	w.pending.Decrease(id, deadline)
	w.horizon.Decrease(id, deadline)
	w.stats.advanced++
}

func (w *workload) postpone() {
	if len(w.live) == 0 {
		return
	}
	id := w.live[w.rnd.Intn(len(w.live))]
	deadline := w.deadline()
	w.pending.Increase(id, deadline)
	w.horizon.Increase(id, deadline)
	w.stats.postponed++
}

// tick advances the virtual clock by one and fires every event whose
// deadline has arrived.
func (w *workload) tick() {
	w.now++
	for {
		id, deadline, ok := w.pending.PeekID()
		if !ok || deadline > w.now {
			return
		}
		w.pending.Pop()
		w.horizon.Remove(id)
		w.forget(id)
		w.stats.fired++
	}
}

func (w *workload) check() error {
	if n := w.pending.Len(); n != w.horizon.Len() || n != len(w.live) || n != w.alloc.Len() {
		return fmt.Errorf("inconsistent state: pending %v, horizon %v, live %v, allocated %v",
			w.pending.Len(), w.horizon.Len(), len(w.live), w.alloc.Len())
	}
	return nil
}

func (w *workload) run(ctx context.Context) error {
	for range w.cfg.Initial {
		w.schedule()
	}
	for step := range w.cfg.Steps {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		switch w.cfg.Actions.pick(w.rnd) {
		case actionSchedule:
			w.schedule()
		case actionCancel:
			w.cancel()
		case actionAdvance:
			w.advance()
		case actionPostpone:
			w.postpone()
		}
		w.tick()
		if err := w.check(); err != nil {
			return fmt.Errorf("step %v: %w", step, err)
		}
		if step%1000 == 0 {
			ctxlog.Logger(ctx).Debug("workload step", "step", step, "now", w.now, "pending", w.pending.Len())
		}
	}
	last, _ := w.horizon.Peek()
	ctxlog.Logger(ctx).Info("workload done",
		"now", w.now,
		"pending", w.pending.Len(),
		"horizon", last,
		"scheduled", w.stats.scheduled,
		"fired", w.stats.fired,
		"canceled", w.stats.canceled,
		"advanced", w.stats.advanced,
		"postponed", w.stats.postponed)
	return nil
}

func events(ctx context.Context, values interface{}, args []string) error {
	flagValues := values.(*eventsFlags)
	if flagValues.Replicas <= 0 {
		return fmt.Errorf("replicas must be positive: %v", flagValues.Replicas)
	}
	cfg := defaultWorkloadConfig()
	if err := cmdyaml.ParseConfigFile(ctx, args[0], cfg); err != nil {
		return err
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	logger, err := flagValues.LoggingConfig().NewLogger()
	if err != nil {
		return err
	}
	defer logger.Close()
	ctx = ctxlog.WithLogger(ctx, logger.Logger)

	g, ctx := errgroup.WithContext(ctx)
	for r := range flagValues.Replicas {
		g.Go(func() error {
			w := newWorkload(cfg, cfg.Seed+int64(r))
			return w.run(ctxlog.WithAttributes(ctx, "replica", r))
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	fmt.Printf("ran %v replicas of %v steps\n", flagValues.Replicas, cfg.Steps)
	return nil
}
