package cli

import (
	"fmt"
	"io"

	"github.com/glorpus-work/pulpctl/internal/logger"
	"github.com/glorpus-work/pulpctl/pkg/consumer"
	"github.com/glorpus-work/pulpctl/pkg/resource"
	"github.com/spf13/cobra"
)

// NewConsumerCmd creates the consumer command with subcommands.
func NewConsumerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consumer",
		Short: "Manage this node's consumer registration",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "status",
			Short: "Show the consumer this node is registered as",
			Args:  cobra.NoArgs,
			RunE:  runConsumerStatus,
		},
		&cobra.Command{
			Use:   "register ID",
			Short: "Register this node as a consumer",
			Args:  cobra.ExactArgs(1),
			RunE:  runConsumerRegister,
		},
		&cobra.Command{
			Use:   "unregister",
			Short: "Unregister this node",
			Args:  cobra.NoArgs,
			RunE:  runConsumerUnregister,
		},
	)

	return cmd
}

func consumerSession(cmd *cobra.Command) (*consumer.Reconciler, func(any, func(io.Writer) error) error, error) {
	cfg, admin, err := newSession(cmd)
	if err != nil {
		return nil, nil, err
	}
	out := func(v any, text func(io.Writer) error) error {
		return render(cmd.OutOrStdout(), cfg, v, text)
	}
	return consumer.NewReconciler(admin), out, nil
}

func runConsumerStatus(cmd *cobra.Command, _ []string) error {
	rec, out, err := consumerSession(cmd)
	if err != nil {
		return err
	}

	current, err := rec.Current(cmd.Context())
	if err != nil {
		return err
	}

	status := map[string]any{"registered": current != nil}
	if current != nil {
		status["id"] = current.ID
	}
	return out(status, func(w io.Writer) error {
		if current == nil {
			_, err := fmt.Fprintln(w, "This node is not registered")
			return err
		}
		_, err := fmt.Fprintf(w, "Registered as %s\n", current.ID)
		return err
	})
}

func runConsumerRegister(cmd *cobra.Command, args []string) error {
	c := &resource.Consumer{ID: args[0]}
	c.ApplyDefaults(resource.Defaults{})
	if err := c.Validate(); err != nil {
		return err
	}

	rec, _, err := consumerSession(cmd)
	if err != nil {
		return err
	}

	if err := rec.Register(cmd.Context(), c.ID); err != nil {
		return err
	}

	logger.Success("Consumer registered", logger.Fields{"consumer_id": c.ID})
	return nil
}

func runConsumerUnregister(cmd *cobra.Command, _ []string) error {
	rec, _, err := consumerSession(cmd)
	if err != nil {
		return err
	}

	if err := rec.Unregister(cmd.Context()); err != nil {
		return err
	}

	logger.Success("Consumer unregistered")
	return nil
}
