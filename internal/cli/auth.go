package cli

import (
	"github.com/glorpus-work/pulpctl/internal/logger"
	"github.com/glorpus-work/pulpctl/pkg/auth"
	"github.com/glorpus-work/pulpctl/pkg/errors"
	"github.com/glorpus-work/pulpctl/pkg/pulp"
	"github.com/spf13/cobra"
)

// NewLoginCmd creates the login command.
func NewLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Check credentials and store them in the keyring",
		Long: `Log in to pulp with the configured login and a password taken from --password,
PULPCTL_PASSWORD or an interactive prompt. On success the password is stored in the
operating system keyring so later commands don't need it.`,
		Args: cobra.NoArgs,
		RunE: runLogin,
	}
}

// NewLogoutCmd creates the logout command.
func NewLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials from the keyring",
		Args:  cobra.NoArgs,
		RunE:  runLogout,
	}
}

func runLogin(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	creds, _, err := auth.Resolve(cfg.Settings.Login,
		auth.StaticSource{Value: cfg.Settings.Password},
		auth.PromptSource{Prompt: readPassword},
	)
	if err != nil {
		return err
	}

	admin := pulp.NewAdmin(newRunner(cfg), creds, pulpOptions(cfg))
	if err := admin.Login(cmd.Context()); err != nil {
		return err
	}

	if !cfg.Settings.UseKeyring {
		logger.Success("Logged in", logger.Fields{"login": creds.Login})
		logger.Warn("use_keyring is disabled, the password was not stored")
		return nil
	}

	if err := auth.NewKeyringStore().Set(creds.Login, creds.Password); err != nil {
		return err
	}
	logger.Success("Logged in, password stored in keyring", logger.Fields{"login": creds.Login})
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store := auth.NewKeyringStore()
	if _, err := store.Get(cfg.Settings.Login); errors.Is(err, errors.ErrCredentialsNotFound) {
		logger.Info("No stored credentials", logger.Fields{"login": cfg.Settings.Login})
		return nil
	}
	if err := store.Delete(cfg.Settings.Login); err != nil {
		return err
	}

	logger.Success("Stored credentials removed", logger.Fields{"login": cfg.Settings.Login})
	return nil
}
