package service

import (
	"sync/atomic"
	"time"
)

type State struct {
	ready     atomic.Bool
	startedAt time.Time

	calcCount    atomic.Int64
	lastCalcUnix atomic.Int64 // unix seconds
}

func NewState() *State {
	s := &State{startedAt: time.Now()}
	s.ready.Store(false)
	return s
}

func (s *State) SetReady(v bool) { s.ready.Store(v) }
func (s *State) Ready() bool     { return s.ready.Load() }

// TouchCalc отмечает выполненный расчёт (для healthz и мониторинга).
func (s *State) TouchCalc(t time.Time) {
	s.calcCount.Add(1)
	s.lastCalcUnix.Store(t.Unix())
}

func (s *State) CalcCount() int64 { return s.calcCount.Load() }

func (s *State) LastCalc() time.Time {
	u := s.lastCalcUnix.Load()
	if u == 0 {
		return time.Time{}
	}
	return time.Unix(u, 0)
}

func (s *State) Uptime() time.Duration { return time.Since(s.startedAt) }
