// Package cli implements the tracekv command line: a replay command that
// prints recorded call transcripts and a flush command that wipes the store.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unkn0wn-root/tracekv"
	zaplog "github.com/unkn0wn-root/tracekv/log/zap"
	"github.com/unkn0wn-root/tracekv/provider"
	redisprovider "github.com/unkn0wn-root/tracekv/provider/redis"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
	Addr    string

	// Connect dials the store for Addr. Defaults to a Redis client; tests
	// swap in an in-memory provider.
	Connect func(addr string) (provider.Provider, error)
}

// NewRootCommand creates the root command for the tracekv CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{
		Connect: func(addr string) (provider.Provider, error) {
			return redisprovider.Dial(addr)
		},
	}

	cmd := &cobra.Command{
		Use:   "tracekv",
		Short: "Inspect tracekv call counters and history",
		Long:  "tracekv talks to the key-value store behind an instrumented cache and reports what was recorded there.",
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Addr, "addr", redisprovider.DefaultAddr, "store address")

	cmd.AddCommand(NewReplayCommand(opts))
	cmd.AddCommand(NewFlushCommand(opts))

	return cmd
}

// newLogger returns a zap-backed logger when verbose, NopLogger otherwise.
func newLogger(verbose bool) tracekv.Logger {
	if !verbose {
		return tracekv.NopLogger{}
	}
	zl, err := zap.NewDevelopment()
	if err != nil {
		return tracekv.NopLogger{}
	}
	return zaplog.ZapLogger{L: zl}
}
