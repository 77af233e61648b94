package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	goose "github.com/pressly/goose/v3"

	"github.com/wolfeidau/node-quotas/internal/config"
	"github.com/wolfeidau/node-quotas/internal/storage/postgresdb"
	"github.com/wolfeidau/node-quotas/migrations"
)

var errArgRequired = errors.New("arg is required for this command")

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"migrator - миграции таблицы категорий квот (goose)\n\n"+
				"вызов: migrator [-config=<file>] [-dir=<dir>] [-command=<command>] [-arg=<version>]\n"+
				"без -dir применяются миграции, встроенные в бинарник\n\n"+
				"команды: up, up-to, down, down-to, reset, status, version\n\n")
		flag.PrintDefaults()
	}
}

func main() {
	var (
		configFile    string
		migrationsDir string
		command       string
		arg           string
		timeout       time.Duration
	)

	flag.StringVar(&configFile, "config", "configs/config.yaml", "path to config file")
	flag.StringVar(&migrationsDir, "dir", "", "path to migrations dir (embedded migrations if empty)")
	flag.StringVar(&command, "command", "up", "migration command")
	flag.StringVar(&arg, "arg", "", "target version for up-to/down-to")
	flag.DurationVar(&timeout, "timeout", 5*time.Minute, "overall timeout")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	p, err := newProvider(configFile, migrationsDir)
	if err != nil {
		log.Fatalf("migrator: %v", err)
	}
	defer p.Close()

	if err := runCommand(ctx, p, command, arg, os.Stdout); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
}

func newProvider(configFile, migrationsDir string) (*goose.Provider, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	var fsys fs.FS = migrations.FS
	if migrationsDir != "" {
		fsys = os.DirFS(migrationsDir)
	}

	dbx, err := postgresdb.OpenDB(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("DB open error: %w", err)
	}

	// Provider закрывает переданное соединение в Close
	p, err := goose.NewProvider(goose.DialectPostgres, dbx.DB, fsys)
	if err != nil {
		_ = dbx.Close()
		return nil, fmt.Errorf("goose provider: %w", err)
	}
	return p, nil
}

// migrator - используемая часть *goose.Provider.
type migrator interface {
	Up(ctx context.Context) ([]*goose.MigrationResult, error)
	UpTo(ctx context.Context, version int64) ([]*goose.MigrationResult, error)
	Down(ctx context.Context) (*goose.MigrationResult, error)
	DownTo(ctx context.Context, version int64) ([]*goose.MigrationResult, error)
	Status(ctx context.Context) ([]*goose.MigrationStatus, error)
	GetDBVersion(ctx context.Context) (int64, error)
}

var _ migrator = (*goose.Provider)(nil)

func runCommand(ctx context.Context, m migrator, command, arg string, out io.Writer) error {
	var (
		results []*goose.MigrationResult
		err     error
	)

	switch strings.ToLower(command) {
	case "up":
		results, err = m.Up(ctx)
	case "up-to":
		v, perr := parseVersion(arg)
		if perr != nil {
			return perr
		}
		results, err = m.UpTo(ctx, v)
	case "down":
		var r *goose.MigrationResult
		if r, err = m.Down(ctx); r != nil {
			results = append(results, r)
		}
	case "down-to":
		v, perr := parseVersion(arg)
		if perr != nil {
			return perr
		}
		results, err = m.DownTo(ctx, v)
	case "reset":
		results, err = m.DownTo(ctx, 0)
	case "status":
		return printStatus(ctx, m, out)
	case "version":
		v, verr := m.GetDBVersion(ctx)
		if verr != nil {
			return fmt.Errorf("get DB version: %w", verr)
		}
		fmt.Fprintf(out, "current version: %d\n", v)
		return nil
	default:
		return fmt.Errorf("unknown command: %s", command)
	}

	for _, r := range results {
		fmt.Fprintf(out, "%-4s %s (%s)\n", r.Direction, r.Source.Path, r.Duration.Round(time.Millisecond))
	}
	if err != nil {
		return fmt.Errorf("%s: %w", command, err)
	}
	if len(results) == 0 {
		fmt.Fprintln(out, "no migrations to apply")
	}
	return nil
}

func printStatus(ctx context.Context, m migrator, out io.Writer) error {
	statuses, err := m.Status(ctx)
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}
	for _, s := range statuses {
		applied := "-"
		if !s.AppliedAt.IsZero() {
			applied = s.AppliedAt.UTC().Format(time.RFC3339)
		}
		fmt.Fprintf(out, "%05d  %-8s %-20s %s\n", s.Source.Version, s.State, applied, s.Source.Path)
	}
	return nil
}

func parseVersion(s string) (int64, error) {
	if s == "" {
		return 0, errArgRequired
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse version %q: %w", s, err)
	}
	return v, nil
}
