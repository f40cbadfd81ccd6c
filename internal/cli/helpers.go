package cli

import (
	"fmt"
	"os"

	"github.com/glorpus-work/pulpctl/internal/logger"
	"github.com/glorpus-work/pulpctl/pkg/auth"
	"github.com/glorpus-work/pulpctl/pkg/command"
	"github.com/glorpus-work/pulpctl/pkg/config"
	"github.com/glorpus-work/pulpctl/pkg/errors"
	"github.com/glorpus-work/pulpctl/pkg/pulp"
	"github.com/glorpus-work/pulpctl/pkg/resource"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// These variables will be set by the main package
var (
	ConfigPath *string
	Verbose    *bool
	NoColor    *bool
)

// newExecutor creates the executor pulp commands run through. Tests replace it.
var newExecutor = func() command.Executor {
	return command.NewLocalExecutor()
}

// readPassword prompts for a password on the controlling terminal. It returns "" when
// stdin is not a terminal.
var readPassword = func(login string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", nil
	}
	_, _ = fmt.Fprintf(os.Stderr, "Password for %s: ", login)
	pw, err := term.ReadPassword(fd)
	_, _ = fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(pw), nil
}

// loadConfig loads the configuration file and layers PULPCTL_* environment variables
// and the persistent flags of cmd over it, then configures logging.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(getConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	for _, key := range config.Keys() {
		_ = v.BindEnv(key)
	}
	if cmd != nil {
		for flag, key := range flagKeys {
			if f := cmd.Flags().Lookup(flag); f != nil {
				_ = v.BindPFlag(key, f)
			}
		}
	}
	for _, key := range config.Keys() {
		if !v.IsSet(key) {
			continue
		}
		if err := cfg.SetValue(key, v.GetString(key)); err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", key, err)
		}
	}

	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}
	if NoColor != nil && *NoColor {
		cfg.Settings.ColorOutput = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrConfigValidation, err)
	}

	logger.InitLogger(cfg.Settings.LogLevel, logger.OutputFormat(cfg.Settings.LogFormat))
	if err := logger.SetLogFile(cfg.Settings.LogFile); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getConfigPath() string {
	if ConfigPath != nil && *ConfigPath != "" {
		return *ConfigPath
	}

	defaultPath, err := config.GetDefaultConfigPath()
	if err != nil {
		logger.Warn("Failed to get default config path, using empty path", logger.Fields{"error": err})
		return ""
	}
	return defaultPath
}

// credentialSources lists where a password may come from, in order: config, flag or
// environment, then the keyring, then a prompt when interactive.
func credentialSources(cfg *config.Config, interactive bool) []auth.Source {
	sources := []auth.Source{auth.StaticSource{Value: cfg.Settings.Password}}
	if cfg.Settings.UseKeyring {
		sources = append(sources, auth.NewKeyringStore())
	}
	if interactive {
		sources = append(sources, auth.PromptSource{Prompt: readPassword})
	}
	return sources
}

// resolveCredentials resolves the configured login's password.
func resolveCredentials(cfg *config.Config, interactive bool) (auth.Credentials, error) {
	creds, src, err := auth.Resolve(cfg.Settings.Login, credentialSources(cfg, interactive)...)
	if err != nil {
		return creds, err
	}
	logger.Debug("Resolved credentials", logger.Fields{"login": creds.Login, "source": src})
	return creds, nil
}

// resourceDefaults returns the defaults manifest and command line resources fall back to.
// Without a stored password resources fall back to the admin default.
func resourceDefaults(cfg *config.Config) resource.Defaults {
	creds, err := resolveCredentials(cfg, false)
	if err != nil {
		if !errors.Is(err, errors.ErrMissingPassword) {
			logger.Warn("Could not read stored credentials, using defaults", logger.Fields{"error": err.Error()})
		}
		creds = auth.Credentials{Login: cfg.Settings.Login}
	}
	return resource.Defaults{RepoType: cfg.Settings.DefaultRepoType, Credentials: creds}
}

func newRunner(cfg *config.Config) *command.Runner {
	return command.NewRunner(newExecutor(), cfg.Settings.CommandTimeout)
}

func pulpOptions(cfg *config.Config) pulp.Options {
	return pulp.Options{
		AdminBinary:    cfg.Settings.AdminBinary,
		ConsumerBinary: cfg.Settings.ConsumerBinary,
	}
}

// newSession loads configuration and opens a pulp session with the resolved credentials.
func newSession(cmd *cobra.Command) (*config.Config, *pulp.Admin, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	return cfg, pulp.NewAdmin(newRunner(cfg), resourceDefaults(cfg).Resolved(), pulpOptions(cfg)), nil
}
