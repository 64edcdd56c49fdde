// Package sitectl implements the operator CLI for the site: password hashing,
// schema migration and content seeding.
package sitectl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	entrypoint "github.com/tsolutions/site/internal/platform/cmd"
	"github.com/tsolutions/site/internal/platform/config"
	"github.com/tsolutions/site/internal/services/site/auth"
	"github.com/tsolutions/site/internal/services/site/seed"
	"github.com/tsolutions/site/internal/services/site/storage/sqlstore"
)

// dbConfig carries the database defaults shared with the site binary.
type dbConfig struct {
	Driver string `env:"SITE_DB_DRIVER" envDefault:"sqlite"`
	DSN    string `env:"SITE_DB_DSN"    envDefault:"tsolutions-database.db"`
}

// NewRootCommand builds the sitectl command tree.
func NewRootCommand() *cobra.Command {
	var db dbConfig

	root := &cobra.Command{
		Use:           entrypoint.ServiceSiteCtl,
		Short:         "Operate the T-Solutions site database and credentials",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var defaults dbConfig
			if err := entrypoint.ParseConfig(&defaults); err != nil {
				return err
			}
			flags := cmd.Flags()
			if !flags.Changed("db-driver") {
				db.Driver = defaults.Driver
			}
			if !flags.Changed("db-dsn") {
				db.DSN = defaults.DSN
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&db.Driver, "db-driver", "", "content database driver: sqlite or postgres (default $SITE_DB_DRIVER or sqlite)")
	root.PersistentFlags().StringVar(&db.DSN, "db-dsn", "", "content database path or DSN (default $SITE_DB_DSN)")

	root.AddCommand(
		newHashPasswordCommand(),
		newMigrateCommand(&db),
		newSeedCommand(&db),
	)
	return root
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := config.LoadDotEnv(".env"); err != nil {
		config.Exitf("%v", err)
	}
	if err := NewRootCommand().Execute(); err != nil {
		config.Exitf("%v", err)
	}
}

func newHashPasswordCommand() *cobra.Command {
	var cost int
	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Print a bcrypt hash for SITE_ADMIN_PASSWORD_HASH",
		Long: `Reads the admin password from the first line of stdin and prints its
bcrypt hash. The password never appears in shell history or process lists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd.InOrStdin())
			if err != nil {
				return err
			}
			hash, err := auth.HashPassword(password, cost)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
	cmd.Flags().IntVar(&cost, "cost", bcrypt.DefaultCost, "bcrypt cost")
	return cmd
}

func readPassword(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("password is required on stdin")
	}
	return password, nil
}

func newMigrateCommand(db *dbConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the content tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := sqlstore.Open(cmd.Context(), db.Driver, db.DSN)
			if err != nil {
				return fmt.Errorf("open content database: %w", err)
			}
			defer store.Close()
			fmt.Fprintf(cmd.OutOrStdout(), "migrations applied to %s database\n", store.SQLX().DriverName())
			return nil
		},
	}
}

func newSeedCommand(db *dbConfig) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "seed FILE",
		Short: "Load services, FAQ entries and reviews from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			file, err := seed.Parse(f)
			if err != nil {
				return err
			}
			if dryRun {
				if err := file.Validate(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "seed file is valid")
				return nil
			}

			store, err := sqlstore.Open(cmd.Context(), db.Driver, db.DSN)
			if err != nil {
				return fmt.Errorf("open content database: %w", err)
			}
			defer store.Close()
			result, err := seed.Apply(cmd.Context(), file, store.Stores())
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the file without writing")
	return cmd
}

func printResult(out io.Writer, result seed.Result) {
	kinds := make([]string, 0, len(result))
	for kind := range result {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	if len(kinds) == 0 {
		fmt.Fprintln(out, "nothing to seed")
		return
	}
	for _, kind := range kinds {
		fmt.Fprintf(out, "%s: %d created\n", kind, result[kind])
	}
}
