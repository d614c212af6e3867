// Command migrate applies, rolls back or reports the goose schema migrations.
//
// Usage:
//
//	migrate [up|down|status]
package main

import (
	"flag"
	"fmt"
	"os"

	"barcode-scanner/internal/config"
	"barcode-scanner/internal/database"
	"barcode-scanner/internal/logger"

	"go.uber.org/zap"
)

func main() {
	dir := flag.String("dir", "", "migrations directory (defaults to DB_MIGRATIONS_DIR)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] up|down|status\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	cfg := config.Load()
	if *dir != "" {
		cfg.Database.MigrationsDir = *dir
	}

	log, err := logger.New(cfg.Server.Env, cfg.Server.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	dbService, err := database.New(cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer dbService.Close()

	db := dbService.DB()

	switch command {
	case "up":
		err = database.RunMigrations(db, cfg.Database.MigrationsDir, log)
	case "down":
		err = database.RollbackMigration(db, cfg.Database.MigrationsDir, log)
	case "status":
		err = database.GetMigrationStatus(db, cfg.Database.MigrationsDir)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal("Migration command failed", zap.String("command", command), zap.Error(err))
	}
}
