package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/bloomsplash/internal/app"
	"github.com/five82/bloomsplash/internal/config"
	"github.com/five82/bloomsplash/internal/state"
	"github.com/five82/bloomsplash/internal/window"
	"github.com/five82/bloomsplash/internal/window/fynewin"
	"github.com/five82/bloomsplash/internal/window/gtkwin"
	"github.com/five82/bloomsplash/internal/window/termwin"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCmd(os.Args[1:], launch)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "bloom-splash: %v\n", err)
		return 1
	}
	return 0
}

// newRootCmd takes no flags of its own; args belong to Bloom. Cobra is handed
// an empty argument list so its hidden completion commands never see them.
func newRootCmd(args []string, run func(ctx context.Context, args []string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:                "bloom-splash [bloom arguments...]",
		Short:              "Start Bloom behind a splash screen",
		Args:               cobra.NoArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), args)
		},
	}
	cmd.SetArgs([]string{})
	return cmd
}

func launch(ctx context.Context, args []string) error {
	store := &state.Store{}
	return app.Run(ctx, app.Options{
		Args:    append([]string{os.Args[0]}, args...),
		Windows: registry(store),
		Store:   store,
	})
}

func registry(store *state.Store) window.Registry {
	return window.Registry{
		config.BackendGTK:      gtkwin.Open,
		config.BackendFyne:     fynewin.Open,
		config.BackendTerminal: termwin.Opener(store),
		config.BackendNone:     window.OpenHeadless,
	}
}
