package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/tracekv"
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	Op string
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Print the recorded transcript of an instrumented operation",
		Long: `Replay reads the call counter and the paired input/output history lists
recorded for an operation and prints one line per invocation:

  <op>(*<input>) -> <output>

Examples:
  tracekv replay
  tracekv replay --op Cache.StoreAs
  tracekv replay --addr redis.internal:6379 --op Cache.Store`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Op, "op", tracekv.OpStore, "operation name to replay")

	return cmd
}

func runReplay(opts *ReplayOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	log := newLogger(opts.Verbose)

	p, err := opts.Connect(opts.Addr)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to connect to store", err)
	}
	defer p.Close(ctx)
	log.Debug("connected", tracekv.Fields{"addr": opts.Addr, "live": p.Live()})

	if !p.Live() {
		fmt.Fprintln(cmd.OutOrStdout(), "store is not reachable; nothing to replay")
		return nil
	}

	if err := tracekv.Replay(ctx, cmd.OutOrStdout(), p, opts.Op); err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("failed to replay %s", opts.Op), err)
	}
	return nil
}
