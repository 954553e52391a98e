// Command migrate applies or inspects the embedded SQLite migrations
// without starting the HTTP server.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/msomdec/bookshelf/internal/config"
	"github.com/msomdec/bookshelf/internal/repository/sqlite"
	"github.com/msomdec/bookshelf/internal/repository/sqlite/migrations"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, status, print")
		name    = flag.String("name", "", "Migration file for 'print'")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if err := run(context.Background(), os.Stdout, cfg.DatabasePath, *command, *name); err != nil {
		slog.Error("migrate", "command", *command, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer, dbPath, command, name string) error {
	if command == "print" {
		if name == "" {
			return fmt.Errorf("-name is required for 'print'")
		}
		script, err := migrations.Script(name)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, script)
		return err
	}

	db, err := sqlite.New(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	switch command {
	case "up":
		if err := db.Migrate(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "Migrations applied successfully")
	case "status":
		status, err := migrations.Status(ctx, db.SqlDB)
		if err != nil {
			return err
		}
		for _, m := range status {
			state := "pending"
			if m.Applied {
				state = "applied " + m.AppliedAt.Format(time.RFC3339)
			}
			fmt.Fprintf(out, "%-40s %s\n", m.Filename, state)
		}
	default:
		return fmt.Errorf("unknown command %q: use up, status, print", command)
	}
	return nil
}
