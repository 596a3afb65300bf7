// Package config loads atkeys settings from a TOML file.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/atkeys/config.toml when a home directory is known
//  3. If the file doesn't exist, use defaults
//  4. If the file exists but fields are empty, use defaults for those fields
//
// The home directory is passed in by the caller. Load never reads the
// environment.
//
// # TOML Format
//
//	keys_dir = "~/.atsign/keys"
//	pattern = "*.atKeys"
//	scan_timeout = "5s"
//	watch = true
//	log_file = "~/.local/share/atkeys/atkeys.log"
//	log_level = "info"
//	theme = "Atsign"
//
// All fields are optional. keys_dir is kept as written so that the key
// scanner, not the loader, reports a missing home directory. log_file is
// expanded immediately.
//
// # Error Handling
//
// Load returns errors for unreadable files, TOML parse errors, and an invalid
// scan_timeout. A missing file is not an error.
package config
