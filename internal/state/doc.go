// Package state holds the atkeys application state machine.
//
// App tracks whether the program is running, which of the two panels (Files
// or Logs) has focus, and owns the keys.Selector with the discovered key
// files. Transitions are plain method calls made from the UI goroutine:
//
//	Quit()        running → stopped (one-way)
//	NextSection() Files ⇄ Logs
//	Tick()        timer hook, currently does nothing
//
// Scan results arrive through ApplyScan or Rescan. A failed scan is recorded,
// not fatal: the file list is emptied and the error is kept for display until
// the next successful scan.
//
// Snapshot copies everything the renderer reads, so View code never holds a
// reference into live state.
package state
