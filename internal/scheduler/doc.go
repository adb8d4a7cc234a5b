// Package scheduler feeds a loaded script to the interpreter one line per
// tick.
//
// The step ticker and the session clock are both serviced by the single
// goroutine that calls Run, so a tick always runs to completion before the
// next one of either kind starts and the session needs no locking. Stopping
// clears the running flag; a line that is already being interpreted is never
// interrupted.
package scheduler
