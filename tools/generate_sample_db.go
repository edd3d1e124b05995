package main

import (
	"database/sql"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Generates a synthetic mlb_games database for local testing. A slice
// of the games is left unscored, like future games in the real data.
func main() {
	var (
		rows      int
		dbPath    string
		startYear int
		endYear   int
		seed      int64
		unscored  float64
	)
	flag.IntVar(&rows, "rows", 2000, "number of games to generate")
	flag.StringVar(&dbPath, "db", "./data/sports_model.db", "output sqlite path")
	flag.IntVar(&startYear, "start-year", 2023, "start year (inclusive)")
	flag.IntVar(&endYear, "end-year", 2025, "end year (inclusive)")
	flag.Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	flag.Float64Var(&unscored, "unscored", 0.1, "fraction of games without scores")
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		fmt.Printf("create data dir failed: %v\n", err)
		return
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		fmt.Printf("open db failed: %v\n", err)
		return
	}
	defer db.Close()

	schema := `
CREATE TABLE IF NOT EXISTS mlb_games (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    game_date TEXT NOT NULL,
    season INTEGER NOT NULL,
    home_team_id INTEGER NOT NULL,
    away_team_id INTEGER NOT NULL,
    home_team_score INTEGER,
    away_team_score INTEGER
);
CREATE INDEX IF NOT EXISTS idx_game_date ON mlb_games(game_date);
`
	if _, err := db.Exec(schema); err != nil {
		fmt.Printf("create schema failed: %v\n", err)
		return
	}

	tx, err := db.Begin()
	if err != nil {
		fmt.Printf("begin tx failed: %v\n", err)
		return
	}
	stmt, err := tx.Prepare(`
		INSERT INTO mlb_games (game_date, season, home_team_id, away_team_id, home_team_score, away_team_score)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		fmt.Printf("prepare insert failed: %v\n", err)
		return
	}
	defer stmt.Close()

	years := endYear - startYear + 1
	for i := 0; i < rows; i++ {
		year := startYear + rng.Intn(years)
		// Regular season runs roughly April through September.
		month := 4 + rng.Intn(6)
		day := 1 + rng.Intn(28)
		gameDate := fmt.Sprintf("%04d-%02d-%02d", year, month, day)

		home := 1 + rng.Intn(30)
		away := 1 + rng.Intn(30)
		for away == home {
			away = 1 + rng.Intn(30)
		}

		var homeScore, awayScore interface{}
		if rng.Float64() >= unscored {
			homeScore = rng.Intn(13)
			awayScore = rng.Intn(13)
		}

		if _, err := stmt.Exec(gameDate, year, home, away, homeScore, awayScore); err != nil {
			fmt.Printf("insert failed: %v\n", err)
			tx.Rollback()
			return
		}
	}

	if err := tx.Commit(); err != nil {
		fmt.Printf("commit failed: %v\n", err)
		return
	}

	fmt.Printf("generated %d games in %s (seed %d, years %d-%d)\n", rows, dbPath, seed, startYear, endYear)
}
