package domain

// PaceLevel says how far reading has fallen behind the year plan.
type PaceLevel string

const (
	PaceOnTrack  PaceLevel = "on_pace"
	PaceSlipping PaceLevel = "slipping"
	PaceBehind   PaceLevel = "behind"
)
