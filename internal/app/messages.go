package app

import "time"

// TickMsg triggers a frame update and advances the engine.
type TickMsg time.Time

// WipeMsg reports that the dead-man switch fired.
type WipeMsg time.Time
