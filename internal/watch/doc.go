// Package watch turns fsnotify events on the keys directory into debounced
// change notifications, so the UI rescans once per burst of writes.
package watch
