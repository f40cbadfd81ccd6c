package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/glorpus-work/pulpctl/internal/cli"
	"github.com/glorpus-work/pulpctl/internal/logger"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	verbose      bool
	noColor      bool
	outputFormat string
	login        string
	password     string
	repoType     string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	_ = logger.Close()
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pulpctl",
		Short: "Manage Pulp repositories and consumers",
		Long: `pulpctl manages Pulp 2 repositories and consumer registration by driving
the pulp-admin and pulp-consumer tools:
- repo and consumer commands for one-off changes
- apply for converging a node to a YAML manifest
- login/logout for keyring-stored credentials`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	flags := cmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file path (default: auto-detect)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.StringVarP(&outputFormat, "output", "o", "", "output format (text, json, yaml)")
	flags.StringVar(&login, "login", "", "pulp login (env PULPCTL_LOGIN)")
	flags.StringVar(&password, "password", "", "pulp password (env PULPCTL_PASSWORD)")
	flags.StringVar(&repoType, "type", "", "repo type, rpm or puppet (env PULPCTL_DEFAULT_REPO_TYPE)")

	// Set up CLI pkg variables
	cli.ConfigPath = &configPath
	cli.Verbose = &verbose
	cli.NoColor = &noColor

	cmd.AddCommand(
		cli.NewRepoCmd(),
		cli.NewConsumerCmd(),
		cli.NewApplyCmd(),
		cli.NewLoginCmd(),
		cli.NewLogoutCmd(),
		cli.NewConfigCmd(),
		cli.NewHookCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
