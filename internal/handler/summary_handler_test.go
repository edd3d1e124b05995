package handler

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"SportsModelGo/internal/model"
	"SportsModelGo/internal/repository"
	"SportsModelGo/internal/service"
	"SportsModelGo/pkg/json"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "sports_model.db")
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE mlb_games (game_date TEXT, home_team_score INTEGER)`)
	require.NoError(t, err)
	for _, d := range []string{"2024-03-01", "2025-04-01", "2025-04-02"} {
		_, err = db.Exec("INSERT INTO mlb_games (game_date, home_team_score) VALUES (?, 4)", d)
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	repo, err := repository.NewSQLRepository("sqlite", dbPath, "mlb_games")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	svc := service.NewSummaryService(repo, 0, 0)
	h := NewSummaryHandler(svc, repo)

	r := gin.New()
	r.POST("/summary", h.Summary)
	r.GET("/overview", h.Overview)
	r.GET("/stats", h.Stats)
	return r
}

func TestSummaryEndpoint(t *testing.T) {
	router := newTestRouter(t)

	body := `{"field":"game_date","threshold":"2025-01-01"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/summary", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp model.SummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.StatusCode)
	require.NotNil(t, resp.Data)
	assert.Equal(t, int64(2), resp.Data.FilteredCount)
	assert.Equal(t, []string{"2024", "2025"}, resp.Data.Years)
}

func TestSummaryEndpointFieldNotFound(t *testing.T) {
	router := newTestRouter(t)

	body := `{"field":"played_at","threshold":"2025-01-01"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/summary", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp model.SummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.CodeFieldNotFound, resp.StatusCode)
	assert.Nil(t, resp.Data)
}

func TestOverviewEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/overview", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp model.OverviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.StatusCode)
	require.NotEmpty(t, resp.Data)

	var games *model.TableOverview
	for _, ov := range resp.Data {
		if ov.Name == "mlb_games" {
			games = ov
		}
	}
	require.NotNil(t, games)
	assert.Equal(t, int64(3), games.TotalRows)
}

func TestStatsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_rows":3`)
}
