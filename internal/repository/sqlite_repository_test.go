package repository_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"SportsModelGo/internal/model"
	"SportsModelGo/internal/repository"
	"SportsModelGo/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// newGamesDB writes a sqlite file with the mlb_games schema and the
// given game_date values. A nil entry inserts a NULL date.
func newGamesDB(t *testing.T, dates []interface{}) string {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "sports_model.db")
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE mlb_games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_date TEXT,
			home_team_id INTEGER NOT NULL DEFAULT 1,
			away_team_id INTEGER NOT NULL DEFAULT 2,
			home_team_score INTEGER,
			away_team_score INTEGER
		)
	`)
	require.NoError(t, err)

	for _, d := range dates {
		_, err = db.Exec("INSERT INTO mlb_games (game_date, home_team_score, away_team_score) VALUES (?, 3, 1)", d)
		require.NoError(t, err)
	}
	return dbPath
}

func openRepo(t *testing.T, dbPath string) *repository.SQLRepository {
	t.Helper()

	repo, err := repository.NewSQLRepository("sqlite", dbPath, "mlb_games")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestNewSQLRepositoryMissingFile(t *testing.T) {
	_, err := repository.NewSQLRepository("sqlite", filepath.Join(t.TempDir(), "nope.db"), "mlb_games")
	require.Error(t, err)
	assert.True(t, model.IsSourceUnavailable(err))
}

func TestNewSQLRepositoryBadTable(t *testing.T) {
	dbPath := newGamesDB(t, nil)
	_, err := repository.NewSQLRepository("sqlite", dbPath, "mlb_games; DROP TABLE mlb_games")
	require.Error(t, err)
	assert.Equal(t, model.CodeInvalidParameter, model.ErrorCode(err))
}

func TestSQLRepositoryQueries(t *testing.T) {
	repo := openRepo(t, newGamesDB(t, []interface{}{
		"2024-03-01", "2024-03-02", "2025-04-01", "2025-04-02", "2025-04-03",
	}))

	count, err := repo.CountSince("game_date", "2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	rng, err := repo.DateRange("game_date", "2025-01-01")
	require.NoError(t, err)
	require.NotNil(t, rng)
	assert.Equal(t, "2025-04-01", rng.Min)
	assert.Equal(t, "2025-04-03", rng.Max)

	years, err := repo.Years("game_date")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024", "2025"}, years)

	counts, err := repo.YearCounts("game_date")
	require.NoError(t, err)
	assert.Equal(t, []model.YearCount{
		{Year: "2024", Count: 2},
		{Year: "2025", Count: 3},
	}, counts)
}

func TestSQLRepositoryEmptyFilter(t *testing.T) {
	repo := openRepo(t, newGamesDB(t, []interface{}{"2023-05-01"}))

	count, err := repo.CountSince("game_date", "2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	rng, err := repo.DateRange("game_date", "2025-01-01")
	require.NoError(t, err)
	assert.Nil(t, rng)
}

func TestSQLRepositoryNullDates(t *testing.T) {
	repo := openRepo(t, newGamesDB(t, []interface{}{"2025-04-01", nil, nil}))

	// NULL dates fall out of the threshold filter but still count in
	// the grouped breakdown, under the empty year key.
	count, err := repo.CountSince("game_date", "2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	years, err := repo.Years("game_date")
	require.NoError(t, err)
	assert.Equal(t, []string{"", "2025"}, years)

	counts, err := repo.YearCounts("game_date")
	require.NoError(t, err)
	var total int64
	for _, yc := range counts {
		total += yc.Count
	}
	assert.Equal(t, int64(3), total)
}

func TestSQLRepositoryHasField(t *testing.T) {
	repo := openRepo(t, newGamesDB(t, nil))

	ok, err := repo.HasField("game_date")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.HasField("played_at")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLRepositorySummarize(t *testing.T) {
	repo := openRepo(t, newGamesDB(t, []interface{}{
		"2024-03-01", "2024-03-02", "2025-04-01", "2025-04-02", "2025-04-03",
	}))

	summary, err := service.Summarize(repo, "game_date", "2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.FilteredCount)
	assert.Equal(t, int64(5), summary.TotalRows)
	assert.Equal(t, []string{"2024", "2025"}, summary.Years)

	_, err = service.Summarize(repo, "played_at", "2025-01-01")
	require.Error(t, err)
	assert.True(t, model.IsFieldNotFound(err))
}

func TestSQLRepositoryInspection(t *testing.T) {
	repo := openRepo(t, newGamesDB(t, []interface{}{"2024-03-01", "2025-04-01"}))

	tables, err := repo.Tables()
	require.NoError(t, err)
	assert.Contains(t, tables, "mlb_games")

	cols, err := repo.Columns("mlb_games")
	require.NoError(t, err)
	names := make([]string, 0, len(cols))
	for _, col := range cols {
		names = append(names, col.Name)
	}
	assert.Contains(t, names, "game_date")
	assert.Contains(t, names, "home_team_score")

	total, err := repo.TotalRows("mlb_games")
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	scored, err := repo.CountNonNull("mlb_games", "home_team_score", "away_team_score")
	require.NoError(t, err)
	assert.Equal(t, int64(2), scored)

	rows, err := repo.RecentRows("mlb_games", "game_date", 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2025-04-01", rows[0]["game_date"])

	stats, err := repo.GetStats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats["total_rows"])
}
