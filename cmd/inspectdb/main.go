package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"

	"SportsModelGo/internal/model"
	"SportsModelGo/internal/repository"
	"SportsModelGo/pkg/config"

	"github.com/sirupsen/logrus"
)

var (
	configPath = flag.String("config", "", "config file path (optional)")
	dbPath     = flag.String("db", "", "database file path")
	driver     = flag.String("driver", "", "database driver: sqlite or duckdb")
	table      = flag.String("table", "", "table to inspect")
	field      = flag.String("field", "", "date column name")
	notNull    = flag.String("notnull", "home_team_score,away_team_score", "comma-separated columns that must be non-NULL for the completeness counts")
	sampleN    = flag.Int("sample", 10, "number of recent rows to show")
)

func main() {
	flag.Parse()

	logrus.SetLevel(logrus.WarnLevel)

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *dbPath == "" {
		*dbPath = cfg.Database.Path
	}
	if *driver == "" {
		*driver = cfg.Database.Driver
	}
	if *table == "" {
		*table = cfg.Database.Table
	}
	if *field == "" {
		*field = cfg.Database.DateField
	}

	repo, err := repository.NewSQLRepository(*driver, *dbPath, *table)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer repo.Close()

	tables, err := repo.Tables()
	if err != nil {
		log.Fatalf("Failed to list tables: %v", err)
	}
	fmt.Println("All tables in database:")
	for _, name := range tables {
		fmt.Printf("  - %s\n", name)
	}

	separator()

	cols, err := repo.Columns(*table)
	if err != nil {
		log.Fatalf("Failed to describe table %s: %v", *table, err)
	}
	fmt.Printf("%s table structure:\n", *table)
	for _, col := range cols {
		fmt.Printf("  - %s (%s)\n", col.Name, col.Type)
	}

	separator()

	total, err := repo.TotalRows(*table)
	if err != nil {
		log.Fatalf("Failed to count rows: %v", err)
	}
	fmt.Printf("Total rows in %s: %d\n", *table, total)

	// Completeness counts only make sense when the columns exist; a
	// schedule-only table simply has no score columns yet.
	checkCols := splitCols(*notNull)
	if present(cols, checkCols) {
		for i := range checkCols {
			count, err := repo.CountNonNull(*table, checkCols[:i+1]...)
			if err != nil {
				log.Fatalf("Failed to count non-NULL rows: %v", err)
			}
			fmt.Printf("Rows with %s: %d\n", strings.Join(checkCols[:i+1], ", "), count)
		}
	}

	separator()

	// Threshold "" matches every non-NULL date, so this is the full range.
	rng, err := repo.DateRange(*field, "")
	if err != nil {
		log.Fatalf("Failed to compute date range: %v", err)
	}
	if rng != nil {
		fmt.Printf("Date range: %s to %s\n", rng.Min, rng.Max)
	} else {
		fmt.Println("No dated rows found")
	}

	separator()

	fmt.Printf("Most recent rows (by %s):\n", *field)
	rows, err := repo.RecentRows(*table, *field, *sampleN)
	if err != nil {
		log.Fatalf("Failed to read sample rows: %v", err)
	}
	for _, row := range rows {
		fmt.Printf("  %s: %s\n", row[*field], formatRow(row, *field))
	}
}

func separator() {
	fmt.Println("\n" + strings.Repeat("=", 50))
}

func splitCols(s string) []string {
	var cols []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cols = append(cols, c)
		}
	}
	return cols
}

func present(cols []model.TableColumn, names []string) bool {
	if len(names) == 0 {
		return false
	}
	have := make(map[string]bool, len(cols))
	for _, col := range cols {
		have[col.Name] = true
	}
	for _, name := range names {
		if !have[name] {
			return false
		}
	}
	return true
}

func formatRow(row map[string]string, dateField string) string {
	keys := make([]string, 0, len(row))
	for k := range row {
		if k != dateField {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, row[k]))
	}
	return strings.Join(parts, " ")
}
