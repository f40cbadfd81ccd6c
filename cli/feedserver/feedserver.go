package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/glorpus-work/pulpctl/internal/logger"
	"github.com/glorpus-work/pulpctl/pkg/feedserver"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	_ = logger.Close()
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		port    int
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "feedserver ADDRESS DOCROOT",
		Short: "Serve a directory as a repository feed",
		Long: fmt.Sprintf(`feedserver serves DOCROOT over HTTP on ADDRESS, port %d by default, until it
receives SIGINT or SIGTERM.`, feedserver.DefaultPort),
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := "info"
			if verbose {
				level = "debug"
			}
			logger.InitLogger(level, logger.FormatText)

			s := feedserver.New(args[0], args[1])
			s.Port = port
			return s.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", feedserver.DefaultPort, "port to listen on")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every request")
	return cmd
}
