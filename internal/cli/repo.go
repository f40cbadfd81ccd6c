package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/glorpus-work/pulpctl/internal/logger"
	"github.com/glorpus-work/pulpctl/pkg/config"
	"github.com/glorpus-work/pulpctl/pkg/pulp"
	"github.com/glorpus-work/pulpctl/pkg/repository"
	"github.com/glorpus-work/pulpctl/pkg/resource"
	"github.com/spf13/cobra"
)

// NewRepoCmd creates the repo command with subcommands.
func NewRepoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repo",
		Short: "Manage repositories",
		Long:  "List, inspect, create, update and delete pulp repositories",
	}

	cmd.AddCommand(
		newRepoListCmd(),
		newRepoShowCmd(),
		newRepoExistsCmd(),
		newRepoCreateCmd(),
		newRepoUpdateCmd(),
		newRepoDeleteCmd(),
		newRepoSchedulesCmd(),
	)

	return cmd
}

func newRepoListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List repositories",
		Long:  "List every repository of the selected repo type",
		Args:  cobra.NoArgs,
		RunE:  runRepoList,
	}
}

func newRepoShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a repository",
		Args:  cobra.ExactArgs(1),
		RunE:  runRepoShow,
	}
}

func newRepoExistsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exists ID",
		Short: "Report whether a repository exists",
		Long:  "Print true or false depending on whether the repository exists",
		Args:  cobra.ExactArgs(1),
		RunE:  runRepoExists,
	}
}

// repoFlags are the repository settings accepted by create and update.
type repoFlags struct {
	displayName string
	description string
	feed        string
	notes       map[string]string
	queries     []string
	schedules   []string
	serveHTTP   bool
	serveHTTPS  bool
	relativeURL string
	feedCACert  string
	feedCert    string
	feedKey     string
}

func (f *repoFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.displayName, "display-name", "", "Display name")
	flags.StringVar(&f.description, "description", "", "Description")
	flags.StringVar(&f.feed, "feed", "", "Feed URL to sync from")
	flags.StringToStringVar(&f.notes, "note", nil, "Note as key=value, replaces all notes (repeatable)")
	flags.StringSliceVar(&f.queries, "query", nil, "Puppet module query (repeatable)")
	flags.BoolVar(&f.serveHTTP, "serve-http", true, "Publish over HTTP")
	flags.BoolVar(&f.serveHTTPS, "serve-https", false, "Publish over HTTPS")
	flags.StringVar(&f.relativeURL, "relative-url", "", "Relative URL the repository is published at")
	flags.StringVar(&f.feedCACert, "feed-ca-cert", "", "CA certificate for the feed")
	flags.StringVar(&f.feedCert, "feed-cert", "", "Client certificate for the feed")
	flags.StringVar(&f.feedKey, "feed-key", "", "Client key for the feed")
	flags.StringArrayVar(&f.schedules, "schedule", nil, "Sync schedule (repeatable)")
}

// resource builds a repository resource holding only the flags given on the command line.
func (f *repoFlags) resource(cmd *cobra.Command, id string) *resource.Repo {
	changed := cmd.Flags().Changed
	str := func(name, value string) *string {
		if !changed(name) {
			return nil
		}
		return &value
	}
	boolean := func(name string, value bool) *bool {
		if !changed(name) {
			return nil
		}
		return &value
	}

	r := &resource.Repo{
		ID:          id,
		DisplayName: str("display-name", f.displayName),
		Description: str("description", f.description),
		Feed:        str("feed", f.feed),
		ServeHTTP:   boolean("serve-http", f.serveHTTP),
		ServeHTTPS:  boolean("serve-https", f.serveHTTPS),
		RelativeURL: str("relative-url", f.relativeURL),
		FeedCACert:  str("feed-ca-cert", f.feedCACert),
		FeedCert:    str("feed-cert", f.feedCert),
		FeedKey:     str("feed-key", f.feedKey),
	}
	if changed("note") {
		r.Notes = f.notes
	}
	if changed("query") {
		r.Queries = f.queries
	}
	if changed("schedule") {
		r.Schedules = f.schedules
	}
	return r
}

func newRepoCreateCmd() *cobra.Command {
	var flags repoFlags

	cmd := &cobra.Command{
		Use:   "create ID",
		Short: "Create a repository",
		Long:  "Create a repository and its sync schedules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepoCreate(cmd, flags.resource(cmd, args[0]))
		},
	}
	flags.register(cmd)

	return cmd
}

func newRepoUpdateCmd() *cobra.Command {
	var flags repoFlags

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a repository",
		Long:  "Change the given settings of an existing repository. Settings that already match are left alone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepoUpdate(cmd, flags.resource(cmd, args[0]))
		},
	}
	flags.register(cmd)

	return cmd
}

func newRepoDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a repository",
		Args:  cobra.ExactArgs(1),
		RunE:  runRepoDelete,
	}
}

func newRepoSchedulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedules",
		Short: "Manage repository sync schedules",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list ID",
			Short: "List the sync schedules of a repository",
			Args:  cobra.ExactArgs(1),
			RunE:  runRepoSchedulesList,
		},
		&cobra.Command{
			Use:   "set ID [SCHEDULE...]",
			Short: "Replace the sync schedules of a repository",
			Long:  "Delete every sync schedule of the repository, then create the given ones",
			Args:  cobra.MinimumNArgs(1),
			RunE:  runRepoSchedulesSet,
		},
	)

	return cmd
}

// repoSession opens a session and returns the reconciler and the repo type to use.
func repoSession(cmd *cobra.Command) (*config.Config, *pulp.Admin, *repository.Reconciler, error) {
	cfg, admin, err := newSession(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, admin, repository.NewReconciler(admin), nil
}

func runRepoList(cmd *cobra.Command, _ []string) error {
	cfg, admin, _, err := repoSession(cmd)
	if err != nil {
		return err
	}

	repoType := cfg.Settings.DefaultRepoType
	repos, err := admin.ListRepos(cmd.Context(), repoType)
	if err != nil {
		return fmt.Errorf("failed to list repositories: %w", err)
	}

	return render(cmd.OutOrStdout(), cfg, repos, func(w io.Writer) error {
		if len(repos) == 0 {
			_, err := fmt.Fprintf(w, "No %s repositories\n", repoType)
			return err
		}
		tabWriter := tabwriter.NewWriter(w, 0, 0, TabWidth, ' ', 0)
		_, _ = fmt.Fprintln(tabWriter, "ID\tDISPLAY NAME\tFEED\tSCHEDULES\tDESCRIPTION")
		for _, r := range repos {
			_, _ = fmt.Fprintf(tabWriter, "%s\t%s\t%s\t%d\t%s\n",
				r.ID, r.DisplayName, r.Feed, len(r.Schedules), truncate(r.Description, MaxDescriptionLength))
		}
		return tabWriter.Flush()
	})
}

func runRepoShow(cmd *cobra.Command, args []string) error {
	cfg, _, rec, err := repoSession(cmd)
	if err != nil {
		return err
	}

	repo, err := rec.Read(cmd.Context(), args[0], cfg.Settings.DefaultRepoType)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), cfg, repo, func(w io.Writer) error {
		return writeRepo(w, repo)
	})
}

func writeRepo(w io.Writer, r *pulp.RepositoryRecord) error {
	tabWriter := tabwriter.NewWriter(w, 0, 0, TabWidth, ' ', 0)
	rows := [][2]string{
		{"Id", r.ID},
		{"Repo Type", r.RepoType},
		{"Display Name", r.DisplayName},
		{"Description", r.Description},
		{"Feed", r.Feed},
		{"Serve HTTP", fmt.Sprint(r.ServeHTTP)},
		{"Serve HTTPS", fmt.Sprint(r.ServeHTTPS)},
		{"Relative URL", r.RelativeURL},
		{"Queries", strings.Join(r.Queries, ", ")},
		{"Schedules", strings.Join(r.Schedules, ", ")},
	}
	for _, row := range rows {
		_, _ = fmt.Fprintf(tabWriter, "%s:\t%s\n", row[0], row[1])
	}
	if len(r.Notes) > 0 {
		_, _ = fmt.Fprintln(tabWriter, "Notes:\t")
		for _, k := range r.NoteKeys() {
			_, _ = fmt.Fprintf(tabWriter, "  %s:\t%s\n", k, r.Notes[k])
		}
	}
	return tabWriter.Flush()
}

func runRepoExists(cmd *cobra.Command, args []string) error {
	cfg, _, rec, err := repoSession(cmd)
	if err != nil {
		return err
	}

	exists, err := rec.Exists(cmd.Context(), args[0], cfg.Settings.DefaultRepoType)
	if err != nil {
		return err
	}

	result := map[string]any{"id": args[0], "repo_type": cfg.Settings.DefaultRepoType, "exists": exists}
	return render(cmd.OutOrStdout(), cfg, result, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, exists)
		return err
	})
}

// validated fills r from the configured defaults and validates it.
func validated(cfg *config.Config, r *resource.Repo) (repository.Desired, error) {
	r.ApplyDefaults(resourceDefaults(cfg))
	if err := r.Validate(); err != nil {
		return repository.Desired{}, err
	}
	return r.Desired(), nil
}

func runRepoCreate(cmd *cobra.Command, r *resource.Repo) error {
	cfg, _, rec, err := repoSession(cmd)
	if err != nil {
		return err
	}

	desired, err := validated(cfg, r)
	if err != nil {
		return err
	}

	if err := rec.Create(cmd.Context(), desired); err != nil {
		return err
	}

	logger.Success("Repository created", logger.Fields{"repo_id": desired.ID, "repo_type": desired.RepoType})
	return nil
}

func runRepoUpdate(cmd *cobra.Command, r *resource.Repo) error {
	cfg, _, rec, err := repoSession(cmd)
	if err != nil {
		return err
	}

	desired, err := validated(cfg, r)
	if err != nil {
		return err
	}

	if _, err := rec.Read(cmd.Context(), desired.ID, desired.RepoType); err != nil {
		return err
	}

	result, err := rec.Ensure(cmd.Context(), desired)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), cfg, result, func(w io.Writer) error {
		if !result.Changed {
			_, err := fmt.Fprintf(w, "Repository %s already up to date\n", desired.ID)
			return err
		}
		for _, action := range result.Actions {
			_, _ = fmt.Fprintf(w, "%s: %s\n", desired.ID, action)
		}
		return nil
	})
}

func runRepoDelete(cmd *cobra.Command, args []string) error {
	cfg, _, rec, err := repoSession(cmd)
	if err != nil {
		return err
	}

	repoType := cfg.Settings.DefaultRepoType
	if err := rec.Destroy(cmd.Context(), args[0], repoType); err != nil {
		return err
	}

	logger.Success("Repository deleted", logger.Fields{"repo_id": args[0], "repo_type": repoType})
	return nil
}

func runRepoSchedulesList(cmd *cobra.Command, args []string) error {
	cfg, _, rec, err := repoSession(cmd)
	if err != nil {
		return err
	}

	repo, err := rec.Read(cmd.Context(), args[0], cfg.Settings.DefaultRepoType)
	if err != nil {
		return err
	}
	schedules := repo.Schedules

	return render(cmd.OutOrStdout(), cfg, schedules, func(w io.Writer) error {
		for _, s := range schedules {
			_, _ = fmt.Fprintln(w, s)
		}
		return nil
	})
}

func runRepoSchedulesSet(cmd *cobra.Command, args []string) error {
	cfg, _, rec, err := repoSession(cmd)
	if err != nil {
		return err
	}

	id, schedules := args[0], args[1:]
	repoType := cfg.Settings.DefaultRepoType
	if _, err := rec.Read(cmd.Context(), id, repoType); err != nil {
		return err
	}

	if err := rec.SetSchedules(cmd.Context(), id, repoType, schedules); err != nil {
		return err
	}

	logger.Success("Sync schedules replaced", logger.Fields{"repo_id": id, "schedules": len(schedules)})
	return nil
}
