// Package keys discovers atSign key files and tracks which one is selected.
//
// # Overview
//
// Two types split the work:
//
//   - Scanner resolves the key directory (default ~/.atsign/keys) and lists the
//     regular files directly under it, in the order the directory returns them.
//   - Selector holds the last listing and a cursor into it.
//
// Scanner never touches a Selector. Callers list first and then hand the result
// to Selector.Replace, which keeps the cursor valid in the same lock as the
// swap. This lets the UI run the listing in a background command and apply it
// on its own goroutine.
//
// # Home Directory
//
// The home directory is injected through ScanOptions.HomeDir instead of being
// read from the environment here. A directory starting with ~ requires it;
// without one List fails with a ConfigurationError wrapping ErrHomeNotSet. An
// absolute Dir works without a home directory.
//
// # Errors
//
//   - ConfigurationError: home directory missing, invalid pattern
//   - IOError: directory missing, not a directory, permission denied
//   - IOError wrapping ErrScanTimeout: listing exceeded ScanOptions.Timeout
//
// A cancelled caller context is returned as-is.
//
// # Cursor Rules
//
// SelectNext and SelectPrevious saturate at the ends of the list and never
// wrap. On an empty list the cursor is 0 and SelectedFile reports false.
package keys
