package table

import "time"

// Report describes one applied Update.
type Report struct {
	Seq       uint64
	At        time.Time
	Requested bool // animated flag passed by the caller
	Animated  bool // whether the update was actually animated
	Rows      int
	Changes   Changeset

	Registered   []string
	Acquired     int
	Reconfigured int
	Released     int
	Elapsed      time.Duration
}

// Observer is notified after every Update, on the goroutine that called it.
type Observer interface {
	DidApply(Report)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Report)

func (f ObserverFunc) DidApply(r Report) { f(r) }
