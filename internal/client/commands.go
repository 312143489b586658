package client

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/food-catalog/internal/adapter"
	"github.com/MKhiriev/food-catalog/internal/logger"
	"github.com/MKhiriev/food-catalog/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	server   string
	timeout  time.Duration
	email    string
	password string
	verbose  bool
}

func (a *App) rootCommand() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Browse and manage the food catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.server, "server", "s", "", "catalog server address (env CATALOG_SERVER)")
	pf.DurationVar(&flags.timeout, "timeout", 0, "request timeout (env CATALOG_REQUEST_TIMEOUT)")
	pf.StringVar(&flags.email, "email", "", "privileged email (env CATALOG_EMAIL)")
	pf.StringVar(&flags.password, "password", "", "privileged password (env CATALOG_PASSWORD)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log requests to stderr")

	cmd.AddCommand(
		a.listCommand(),
		a.countsCommand(),
		a.getCommand(),
		a.addCommand(),
		a.deleteCommand(),
		a.loginCommand(),
		a.logoutCommand(),
		a.browseCommand(),
		a.versionCommand(),
	)

	return cmd
}

// setup loads the client config, applies flag overrides and builds the
// adapter shared by all subcommands.
func (a *App) setup(cmd *cobra.Command, flags rootFlags) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	changed := cmd.Flags().Changed
	if changed("server") {
		cfg.Adapter.HTTPAddress = flags.server
	}
	if changed("timeout") {
		cfg.Adapter.RequestTimeout = flags.timeout
	}
	if changed("email") {
		cfg.Credentials.Email = flags.email
	}
	if changed("password") {
		cfg.Credentials.Password = flags.password
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger.NewConsoleLogger("catalogctl", cmd.ErrOrStderr(), flags.verbose)

	a.catalog, err = a.newAdapter(cfg.Adapter, a.logger)
	if err != nil {
		return fmt.Errorf("create catalog adapter: %w", err)
	}
	return nil
}

func parseCategory(raw string) (models.Selector, error) {
	switch sel := models.Selector(strings.ToLower(strings.TrimSpace(raw))); sel {
	case "", models.SelectorAll:
		return models.SelectorAll, nil
	case models.SelectorFruit, models.SelectorVegetable:
		return sel, nil
	default:
		return "", ErrInvalidCategory
	}
}

func (a *App) listCommand() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog items, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel, err := parseCategory(category)
			if err != nil {
				return err
			}

			view, err := a.catalog.Browse(cmd.Context(), sel)
			if err != nil && !errors.Is(err, adapter.ErrUnavailable) {
				return err
			}

			out := cmd.OutOrStdout()
			printCounts(out, view.Counts)
			printItems(out, view.Items)
			return err
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "all", "all, fruit or vegetable")
	return cmd
}

func (a *App) countsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "counts",
		Short: "Show how many items each category holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			counts, err := a.catalog.Counts(cmd.Context())
			if err != nil {
				return err
			}
			printCounts(cmd.OutOrStdout(), counts)
			return nil
		},
	}
}

func (a *App) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := a.catalog.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printItem(cmd.OutOrStdout(), item)
			return nil
		},
	}
}

func (a *App) addCommand() *cobra.Command {
	var candidate models.ItemCandidate
	var calorie string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item (privileged)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			creds, err := a.requireCredentials()
			if err != nil {
				return err
			}

			candidate.Calorie = models.CalorieInput(calorie)
			item, err := a.catalog.Add(cmd.Context(), creds, candidate)
			if err != nil {
				return err
			}

			a.logger.Debug().Str("id", item.ID).Msg("item added")
			fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", item.ID)
			printItem(cmd.OutOrStdout(), item)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&candidate.Name, "name", "", "item name")
	f.StringVar(&candidate.Category, "category", "", "fruit or vegetable")
	f.StringVar(&calorie, "calorie", "", "energy in kcal, empty when unknown")
	f.StringVar(&candidate.Description, "description", "", "free text")
	f.StringVar(&candidate.Image, "image", "", "absolute http(s) image URL")
	return cmd
}

func (a *App) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an item (privileged)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := a.requireCredentials()
			if err != nil {
				return err
			}

			if err = a.catalog.Delete(cmd.Context(), creds, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}

func (a *App) loginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Check the configured credentials against the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			creds, err := a.requireCredentials()
			if err != nil {
				return err
			}

			session, err := a.catalog.Login(cmd.Context(), creds)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s (privileged: %t)\n", session.Email, session.Privileged)
			return nil
		},
	}
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Return to the anonymous session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.catalog.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
}

func (a *App) browseCommand() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive terminal browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel, err := parseCategory(category)
			if err != nil {
				return err
			}
			return a.browse(cmd.Context(), a.catalog, a.credentials(), sel)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "all", "tab to open first")
	return cmd
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "client: %s\n", a.buildInfo)

			version, err := a.catalog.Version(cmd.Context())
			if err != nil {
				a.logger.Warn().Err(err).Msg("server version unavailable")
				version = "unavailable"
			}
			fmt.Fprintf(out, "server: %s\n", version)
			return nil
		},
	}
}

func printCounts(w io.Writer, c models.Counts) {
	fmt.Fprintf(w, "total %d │ fruit %d │ vegetable %d\n", c.Total, c.Fruit, c.Vegetable)
}

func printItems(w io.Writer, items []models.ClassifiedItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, "no items")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "KIND", "CALORIES")
	for _, item := range items {
		t.Row(item.ID, item.Name, item.Kind.String(), calorieText(item.Calorie))
	}
	fmt.Fprintln(w, t.Render())
}

func printItem(w io.Writer, item models.ClassifiedItem) {
	fmt.Fprintf(w, "id:          %s\n", item.ID)
	fmt.Fprintf(w, "name:        %s\n", item.Name)
	fmt.Fprintf(w, "kind:        %s\n", item.Kind)
	fmt.Fprintf(w, "category:    %s\n", item.Category)
	fmt.Fprintf(w, "calories:    %s\n", calorieText(item.Calorie))
	fmt.Fprintf(w, "description: %s\n", derefOrDash(item.Description))
	fmt.Fprintf(w, "image:       %s\n", derefOrDash(item.Image))
	if !item.CreatedAt.IsZero() {
		fmt.Fprintf(w, "created:     %s\n", item.CreatedAt.Format(time.RFC3339))
	}
}

func calorieText(v *float64) string {
	if s := string(models.CalorieText(v)); s != "" {
		return s + " kcal"
	}
	return "unknown"
}

func derefOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}
