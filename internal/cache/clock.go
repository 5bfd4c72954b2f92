package cache

import "time"

// Clock supplies the current time. The controller never reads the wall clock
// directly so tests can drive TTL and gap checks deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time { return time.Now() }

// Timer is a cancellable one-shot timer handle. The controller keeps the
// handle for its watchdog and stops it explicitly on every exit path.
type Timer interface {
	// Stop cancels the timer. It reports whether the call prevented the
	// timer from firing.
	Stop() bool
}

// TimerFunc starts a one-shot timer that runs fn after d. It is injected so
// tests can fire or swallow the watchdog without sleeping.
type TimerFunc func(d time.Duration, fn func()) Timer

type goTimer struct{ t *time.Timer }

func (g goTimer) Stop() bool { return g.t.Stop() }

// StartTimer is the production TimerFunc backed by time.AfterFunc.
func StartTimer(d time.Duration, fn func()) Timer {
	return goTimer{t: time.AfterFunc(d, fn)}
}
