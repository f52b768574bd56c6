// Package messages picks the decorative encouragement line shown under the
// timer. Selection is a pure lookup on the session snapshot, so the same
// snapshot always yields the same line; nothing here feeds back into the
// engine.
package messages

import "github.com/avelok/stint/internal/session"

// Bucket positions within a phase. Progress is measured against the
// current phase only, matching how the progress bar is drawn.
const (
	bucketEarly = iota
	bucketMiddle
	bucketLate
)

var preparationMessages = [3]string{
	"Settle in. The session starts soon.",
	"Clear the desk, clear the mind.",
	"Almost time to focus.",
}

var focusMessages = [3]string{
	"Deep breath. One thing at a time.",
	"Halfway through. Keep the thread.",
	"Strong finish ahead.",
}

var breakMessages = [3]string{
	"Step away from the screen.",
	"Stretch. Water. Breathe.",
	"Focus resumes shortly.",
}

const (
	idleMessage      = "Press s to begin."
	pausedMessage    = "Paused. Press s to resume."
	completedMessage = "Session complete. Well done."
)

// For returns the line to display for a snapshot.
func For(s session.State) string {
	switch s.RunState {
	case session.RunIdle:
		return idleMessage
	case session.RunPaused:
		return pausedMessage
	case session.RunCompleted:
		return completedMessage
	}

	b := bucket(s)
	switch s.Phase {
	case session.PhasePreparation:
		return preparationMessages[b]
	case session.PhaseBreak:
		return breakMessages[b]
	default:
		return focusMessages[b]
	}
}

func bucket(s session.State) int {
	if s.PhaseTotal == 0 {
		return bucketLate
	}
	switch progress := float64(s.ElapsedInPhase) / float64(s.PhaseTotal); {
	case progress < 1.0/3:
		return bucketEarly
	case progress < 2.0/3:
		return bucketMiddle
	default:
		return bucketLate
	}
}
