// Command migrate manages the wallet database schema.
//
//	migrate [-config path] up | down [n] | goto <version> | force <version> | version | list
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"delivery-wallet/config"
	pgStorage "delivery-wallet/internal/adapter/storage/postgres"
	"delivery-wallet/pkg/logger"

	"github.com/golang-migrate/migrate/v4"
	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "", "path to a config file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: migrate [-config path] up | down [n] | goto <version> | force <version> | version | list\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	if err := run(cfg.Database.MigrateURL(), flag.Args(), log); err != nil {
		log.Fatal().Err(err).Str("command", flag.Arg(0)).Msg("migration failed")
	}
}

func run(databaseURL string, args []string, log zerolog.Logger) error {
	if args[0] == "list" {
		names, err := pgStorage.MigrationNames()
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return nil
	}
	if args[0] == "up" {
		return pgStorage.MigrateUp(databaseURL, log)
	}

	m, err := pgStorage.NewMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	switch args[0] {
	case "down":
		steps := 1
		if len(args) > 1 {
			if steps, err = strconv.Atoi(args[1]); err != nil || steps < 1 {
				return fmt.Errorf("down: invalid step count %q", args[1])
			}
		}
		err = m.Steps(-steps)
	case "goto":
		v, perr := versionArg(args)
		if perr != nil {
			return perr
		}
		err = m.Migrate(uint(v))
	case "force":
		v, perr := versionArg(args)
		if perr != nil {
			return perr
		}
		err = m.Force(v)
	case "version":
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		log.Info().Msg("no migration applied")
		return nil
	}
	if err != nil {
		return err
	}
	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("schema version")
	return nil
}

func versionArg(args []string) (int, error) {
	if len(args) < 2 {
		return 0, fmt.Errorf("%s: version required", args[0])
	}
	v, err := strconv.Atoi(args[1])
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%s: invalid version %q", args[0], args[1])
	}
	return v, nil
}
