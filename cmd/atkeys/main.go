package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/atkeys/internal/app"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := rootCmd(os.Getenv("HOME"))
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "atkeys: %v\n", err)
		return 1
	}
	return 0
}

// rootCmd builds the atkeys command. home is the user's home directory, or
// empty when HOME is unset.
func rootCmd(home string) *cobra.Command {
	opts := app.Options{HomeDir: home}

	cmd := &cobra.Command{
		Use:     "atkeys",
		Short:   "Browse atSign key files",
		Long:    `atkeys lists the atSign key files in ~/.atsign/keys next to a live log panel.`,
		Version: version,
		Args:    cobra.NoArgs,

		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/atkeys/config.toml)")
	flags.StringVar(&opts.KeysDir, "keys-dir", "", "directory holding the key files (default ~/.atsign/keys)")
	flags.StringVar(&opts.Pattern, "pattern", "", "only list files whose name matches this glob")
	flags.DurationVar(&opts.ScanTimeout, "scan-timeout", 0, "give up on a directory scan after this long (default 5s)")
	flags.BoolVar(&opts.NoWatch, "no-watch", false, "do not rescan when the directory changes")
	flags.StringVar(&opts.LogFile, "log-file", "", "also append logs to this file")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (default info)")
	flags.StringVar(&opts.Theme, "theme", "", "color theme: Atsign, Nightfox, Slate")

	return cmd
}
