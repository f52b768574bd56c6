package session

// Phase identifies one stage of a session.
type Phase int

const (
	PhasePreparation Phase = iota
	PhaseFocus
	PhaseBreak
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhasePreparation:
		return "preparation"
	case PhaseFocus:
		return "focus"
	case PhaseBreak:
		return "break"
	case PhaseCompleted:
		return "completed"
	}
	return "unknown"
}

// RunState is the engine's activity status, orthogonal to Phase.
type RunState int

const (
	RunIdle RunState = iota
	RunRunning
	RunPaused
	RunCompleted
)

func (r RunState) String() string {
	switch r {
	case RunIdle:
		return "idle"
	case RunRunning:
		return "running"
	case RunPaused:
		return "paused"
	case RunCompleted:
		return "completed"
	}
	return "unknown"
}
