// Command catalog prints the admissions catalog straight from the database.
//
// Usage:
//
//	catalog [-config configs/config.yaml] institutions|courses|applications|admissions
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/yigit/careerguide/internal/app/repositories"
	"github.com/yigit/careerguide/internal/config"
	"github.com/yigit/careerguide/internal/db"
	"github.com/yigit/careerguide/internal/pkg/logger"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the YAML configuration")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: catalog [-config path] %s\n", availableReports())
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	report, ok := reports[flag.Arg(0)]
	if !ok {
		color.Red("Unknown report %q. Choose one of: %s", flag.Arg(0), availableReports())
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Configure(logger.Config{Level: logger.WarnLevel, Pretty: true})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close()

	if err := report(ctx, repositories.NewRepositories(database.Pool), os.Stdout); err != nil {
		color.Red("Report failed: %v", err)
		os.Exit(1)
	}
}
