package main // Entry point package

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iliyamo/fyyur/internal/config"
	"github.com/iliyamo/fyyur/internal/database"
)

var rootCmd = &cobra.Command{
	Use:   "fyyur",
	Short: "Fyyur venue and artist booking listings",
	Long:  `Fyyur lists venues, artists and the shows booking one at the other. Without a subcommand it starts the web server.`,
	RunE:  runServe,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, serveCmd} {
		c.Flags().BoolVar(&autoMigrate, "migrate", false, "apply pending migrations before serving")
	}
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// dbOptions maps the configuration onto the database connection options.
func dbOptions(cfg config.Config) database.Options {
	return database.Options{
		Driver: cfg.DBDriver,
		URL:    cfg.DatabaseURL,
		User:   cfg.DBUser,
		Pass:   cfg.DBPass,
		Host:   cfg.DBHost,
		Port:   cfg.DBPort,
		Name:   cfg.DBName,
		Path:   cfg.DBPath,
	}
}
