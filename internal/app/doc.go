// Package app is the composition root for atkeys.
//
// Run loads the config file, applies command line overrides, builds the
// logger, the key scanner and the application state, performs the first scan
// and then hands control to the UI until the user quits.
//
//	Run()
//	  ├─> config.Load()       ~/.config/atkeys/config.toml
//	  ├─> logging.New()       buffer hook + optional log file
//	  ├─> keys.NewScanner()   directory, pattern, timeout
//	  ├─> state.App.Rescan()  initial scan, errors are logged
//	  ├─> startWatching()     fsnotify, or StartPoller as fallback
//	  └─> ui.Run()            blocks
//
// A failed scan never stops the application: the list is left empty and the
// error is shown in the Files panel. Config, logger and scanner setup errors
// are returned.
package app
