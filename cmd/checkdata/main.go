package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"SportsModelGo/internal/report"
	"SportsModelGo/internal/repository"
	"SportsModelGo/internal/service"
	"SportsModelGo/pkg/config"
	"SportsModelGo/pkg/json"

	"github.com/sirupsen/logrus"
)

var (
	configPath = flag.String("config", "", "config file path (optional)")
	dbPath     = flag.String("db", "", "database file path")
	driver     = flag.String("driver", "", "database driver: sqlite or duckdb")
	table      = flag.String("table", "", "table to report over")
	field      = flag.String("field", "", "date column name")
	since      = flag.String("since", "", "inclusive lower bound date (YYYY-MM-DD)")
	asJSON     = flag.Bool("json", false, "print the summary as JSON instead of text")
	debug      = flag.Bool("debug", false, "enable debug logging")
)

func main() {
	flag.Parse()

	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		// One-shot diagnostic: keep the report itself the only stdout
		// noise unless asked otherwise.
		logrus.SetLevel(logrus.WarnLevel)
	}
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	resolve(dbPath, cfg.Database.Path)
	resolve(driver, cfg.Database.Driver)
	resolve(table, cfg.Database.Table)
	resolve(field, cfg.Database.DateField)
	resolve(since, cfg.Report.Since)

	logrus.Debugf("Database: %s (%s), table: %s, field: %s, since: %s",
		*dbPath, *driver, *table, *field, *since)

	repo, err := repository.NewSQLRepository(*driver, *dbPath, *table)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer repo.Close()

	summary, err := service.Summarize(repo, *field, *since)
	if err != nil {
		log.Fatalf("Summary failed: %v", err)
	}

	if *asJSON {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode summary: %v", err)
		}
		fmt.Println(string(data))
		return
	}

	report.Render(os.Stdout, summary)
}

// resolve fills an unset flag from the config value.
func resolve(flagValue *string, cfgValue string) {
	if *flagValue == "" {
		*flagValue = cfgValue
	}
}
