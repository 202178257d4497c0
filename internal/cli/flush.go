package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/tracekv"
)

// NewFlushCommand creates the flush command.
func NewFlushCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "flush",
		Short:         "Wipe every key in the connected store",
		Long:          "Flush removes all keys - stored values, counters and history lists alike.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlush(rootOpts, cmd)
		},
	}
	return cmd
}

func runFlush(opts *RootOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	log := newLogger(opts.Verbose)

	p, err := opts.Connect(opts.Addr)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to connect to store", err)
	}
	defer p.Close(ctx)
	log.Debug("connected", tracekv.Fields{"addr": opts.Addr, "live": p.Live()})

	if !p.Live() {
		return WrapExitError(ExitCommandError, "store is not reachable", fmt.Errorf("no ping response from %s", opts.Addr))
	}

	if err := p.FlushAll(ctx); err != nil {
		return WrapExitError(ExitCommandError, "failed to flush store", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "store flushed")
	return nil
}
