// Package logging sets up the logrus logger used across atkeys.
//
// Every entry is formatted by LineFormatter and kept in a Buffer hook, which
// the Logs panel reads on each UI tick. When a log file is configured the same
// lines are appended to it, and the tail of the file is loaded into the buffer
// at startup.
package logging
