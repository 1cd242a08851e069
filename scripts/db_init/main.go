package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	dbfs "github.com/kainoa/surftrack/db"
	"github.com/kainoa/surftrack/internal/config"
	"github.com/kainoa/surftrack/internal/db"
	"github.com/kainoa/surftrack/internal/repository/sqlite"
)

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	database, err := db.New(ctx, cfg.DSN(), db.PoolConfig{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	// run migrations and seed using internal/db.Migrate
	if err := db.Migrate(ctx, database, dbfs.Migrations, dbfs.SeedFiles); err != nil {
		fmt.Fprintf(os.Stderr, "Migration runner error: %v\n", err)
		os.Exit(1)
	}

	// optionally set a signin password for the local account
	if password := os.Getenv("SURFTRACK_PASSWORD"); password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Password hash error: %v\n", err)
			os.Exit(1)
		}
		repo := sqlite.New(database, nil)
		if err := repo.SetUserPassword(ctx, 1, string(hash)); err != nil {
			fmt.Fprintf(os.Stderr, "Password set error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Local account password set.")
	}

	fmt.Println("Database initialized successfully.")
}
