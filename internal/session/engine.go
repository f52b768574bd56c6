// Package session implements the focus/break session state machine. An
// Engine owns one session's state and is driven by one Tick per second plus
// the user commands Start, Pause, Reset and SkipPhase. It performs no I/O
// and never schedules anything itself; hosts own the periodic driver and
// stop calling Tick whenever the engine is not Running.
package session

import "github.com/avelok/stint/internal/config"

// State is a read-only snapshot of a session. All durations are whole
// seconds; ElapsedInPhase + RemainingInPhase == PhaseTotal between ticks.
type State struct {
	Phase                 Phase
	RunState              RunState
	CurrentLoop           int // 1-indexed, never exceeds Config.LoopCount
	ElapsedInPhase        int
	RemainingInPhase      int
	PhaseTotal            int
	CoinsEarned           int
	CompletedFocusSeconds int
}

// Engine is the session state machine. It is not safe for concurrent use;
// hosts on multiple goroutines must serialize access (see Driver).
type Engine struct {
	cfg   Config
	state State
}

// New builds an engine for cfg. The session starts Idle in the preparation
// phase when enabled, otherwise in the first focus phase.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, state: initialState(cfg)}, nil
}

func initialState(cfg Config) State {
	phase := PhaseFocus
	if cfg.WithPreparation {
		phase = PhasePreparation
	}
	total := phaseDuration(cfg, phase)
	return State{
		Phase:            phase,
		RunState:         RunIdle,
		CurrentLoop:      1,
		RemainingInPhase: total,
		PhaseTotal:       total,
	}
}

func phaseDuration(cfg Config, p Phase) int {
	switch p {
	case PhasePreparation:
		return int(config.PreparationDuration.Seconds())
	case PhaseFocus:
		return int(cfg.FocusDuration.Seconds())
	case PhaseBreak:
		return int(cfg.BreakDuration.Seconds())
	}
	return 0
}

// Snapshot returns the current session state.
func (e *Engine) Snapshot() State { return e.state }

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Start begins or resumes the session. Calling it while already Running or
// after completion has no effect; resuming keeps the phase clock where
// Pause left it.
func (e *Engine) Start() {
	if e.state.RunState == RunIdle || e.state.RunState == RunPaused {
		e.state.RunState = RunRunning
	}
}

// Pause freezes the phase clock. No-op unless Running.
func (e *Engine) Pause() {
	if e.state.RunState == RunRunning {
		e.state.RunState = RunPaused
	}
}

// Reset discards all progress and returns to the initial idle state, as if
// the engine had just been constructed.
func (e *Engine) Reset() {
	e.state = initialState(e.cfg)
}

// Tick advances the session by one second. It has no effect unless the
// session is Running. The next state is computed whole and assigned in one
// step, so a phase transition never observes a half-updated clock.
func (e *Engine) Tick() {
	if e.state.RunState != RunRunning || e.state.Phase == PhaseCompleted {
		return
	}
	next := e.state
	next.ElapsedInPhase++
	next.RemainingInPhase--
	if next.RemainingInPhase <= 0 {
		next = advance(e.cfg, next, false)
	}
	e.state = next
}

// SkipPhase ends the current phase immediately using whatever time has
// accumulated, forfeiting coins for an in-progress focus phase. No-op
// unless Running.
func (e *Engine) SkipPhase() {
	if e.state.RunState != RunRunning || e.state.Phase == PhaseCompleted {
		return
	}
	e.state = advance(e.cfg, e.state, true)
}

// advance applies the phase-exit rules to s and returns the state at the
// start of the next phase. Reward accounting happens before the phase
// switch; a skipped focus phase still counts toward completed focus time
// but earns nothing.
func advance(cfg Config, s State, skipped bool) State {
	if s.Phase == PhaseFocus {
		s.CompletedFocusSeconds += s.ElapsedInPhase
		if !skipped {
			s.CoinsEarned += s.ElapsedInPhase / config.CoinInterval
		}
	}

	var next Phase
	switch s.Phase {
	case PhasePreparation:
		next = PhaseFocus
	case PhaseFocus:
		switch {
		case s.CurrentLoop >= cfg.LoopCount:
			// The final focus phase ends the session; no trailing break.
			next = PhaseCompleted
		case cfg.BreakDuration > 0:
			next = PhaseBreak
		default:
			next = PhaseFocus
			s.CurrentLoop++
		}
	case PhaseBreak:
		if s.CurrentLoop < cfg.LoopCount {
			next = PhaseFocus
			s.CurrentLoop++
		} else {
			next = PhaseCompleted
		}
	default:
		next = PhaseCompleted
	}

	total := phaseDuration(cfg, next)
	s.Phase = next
	s.ElapsedInPhase = 0
	s.RemainingInPhase = total
	s.PhaseTotal = total
	if next == PhaseCompleted {
		s.RunState = RunCompleted
	}
	return s
}

// DisplayTime returns the seconds to surface: elapsed when counting up,
// remaining otherwise. Display preference only; phase logic is unaffected.
func (e *Engine) DisplayTime() int {
	if e.cfg.CountUp {
		return e.state.ElapsedInPhase
	}
	return e.state.RemainingInPhase
}

// FormattedDisplayTime renders DisplayTime as MM:SS.
func (e *Engine) FormattedDisplayTime() string {
	return FormatTime(e.DisplayTime())
}

// PhaseProgress reports how far through the current phase the session is,
// in [0,1]. Progress is scoped to the current phase, not the whole
// session: a whole-session reading would jump backwards at every phase
// boundary.
func (e *Engine) PhaseProgress() float64 {
	if e.state.PhaseTotal == 0 {
		return 1
	}
	return float64(e.state.ElapsedInPhase) / float64(e.state.PhaseTotal)
}

// TotalConfiguredDuration returns the planned session length in seconds.
func (e *Engine) TotalConfiguredDuration() int {
	return e.cfg.TotalConfiguredDuration()
}
