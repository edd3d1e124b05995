package repository

import (
	"database/sql"
	"fmt"
	"os"
	"regexp"
	"time"

	"SportsModelGo/internal/model"

	_ "github.com/marcboeker/go-duckdb"
	_ "modernc.org/sqlite"
)

// identPattern guards table/column names before they are spliced into
// SQL text; placeholders cannot be used for identifiers.
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLRepository reads one table of a local database file. The default
// engine is SQLite; DuckDB is supported for the same read-only
// aggregate queries via driver="duckdb".
type SQLRepository struct {
	db     *sql.DB
	driver string
	table  string
}

// NewSQLRepository opens the database file at dbPath and binds the
// repository to table. The file must already exist; this is a read-only
// diagnostic and must not create an empty database on a typoed path.
func NewSQLRepository(driver, dbPath, table string) (*SQLRepository, error) {
	if driver == "" {
		driver = "sqlite"
	}
	if !identPattern.MatchString(table) {
		return nil, model.ErrInvalidParameter(fmt.Sprintf("invalid table name: %q", table))
	}
	if _, err := os.Stat(dbPath); err != nil {
		return nil, model.ErrSourceUnavailable(fmt.Sprintf("database file not found: %s", dbPath))
	}

	db, err := sql.Open(driver, dbPath)
	if err != nil {
		return nil, model.ErrSourceUnavailable(fmt.Sprintf("open %s: %v", dbPath, err))
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, model.ErrSourceUnavailable(fmt.Sprintf("ping %s: %v", dbPath, err))
	}

	if driver == "sqlite" {
		db.Exec("PRAGMA journal_mode=WAL")
		db.Exec("PRAGMA synchronous=NORMAL")
		db.Exec("PRAGMA cache_size=10000")
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return &SQLRepository{db: db, driver: driver, table: table}, nil
}

// Close releases the underlying connection pool.
func (r *SQLRepository) Close() error {
	return r.db.Close()
}

// Table returns the bound table name.
func (r *SQLRepository) Table() string {
	return r.table
}

// HasField reports whether the bound table has a column named field.
func (r *SQLRepository) HasField(field string) (bool, error) {
	if !identPattern.MatchString(field) {
		return false, nil
	}
	cols, err := r.Columns(r.table)
	if err != nil {
		return false, err
	}
	for _, col := range cols {
		if col.Name == field {
			return true, nil
		}
	}
	return false, nil
}

// CountSince counts rows whose field value is >= threshold. ISO-8601
// date strings compare lexically equal to chronologically, so this is a
// plain string comparison in SQL.
func (r *SQLRepository) CountSince(field, threshold string) (int64, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s >= ?", r.table, field)

	var count int64
	if err := r.db.QueryRow(query, threshold).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// DateRange returns the (min, max) of field among rows >= threshold,
// or nil when no row matches. An empty match is a valid result.
func (r *SQLRepository) DateRange(field, threshold string) (*model.DateRange, error) {
	query := fmt.Sprintf("SELECT MIN(%s), MAX(%s) FROM %s WHERE %s >= ?", field, field, r.table, field)

	var min, max sql.NullString
	if err := r.db.QueryRow(query, threshold).Scan(&min, &max); err != nil {
		return nil, err
	}
	if !min.Valid {
		return nil, nil
	}
	return &model.DateRange{Min: min.String, Max: max.String}, nil
}

// Years returns the distinct 4-character year prefixes of field across
// the whole table, ascending. NULL dates surface as the empty key.
func (r *SQLRepository) Years(field string) ([]string, error) {
	query := fmt.Sprintf("SELECT DISTINCT SUBSTR(%s, 1, 4) AS year FROM %s ORDER BY year", field, r.table)

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var years []string
	for rows.Next() {
		var year sql.NullString
		if err := rows.Scan(&year); err != nil {
			return nil, err
		}
		years = append(years, year.String)
	}
	return years, rows.Err()
}

// YearCounts groups the whole table by year prefix and counts each
// group, ascending by year. The counts sum to the table's row count.
func (r *SQLRepository) YearCounts(field string) ([]model.YearCount, error) {
	query := fmt.Sprintf("SELECT SUBSTR(%s, 1, 4) AS year, COUNT(*) FROM %s GROUP BY year ORDER BY year", field, r.table)

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []model.YearCount
	for rows.Next() {
		var year sql.NullString
		var count int64
		if err := rows.Scan(&year, &count); err != nil {
			return nil, err
		}
		counts = append(counts, model.YearCount{Year: year.String, Count: count})
	}
	return counts, rows.Err()
}

// Tables lists the user tables in the database.
func (r *SQLRepository) Tables() ([]string, error) {
	query := "SELECT name FROM sqlite_master WHERE type='table' ORDER BY name"
	if r.driver == "duckdb" {
		query = "SELECT table_name FROM information_schema.tables WHERE table_schema='main' ORDER BY table_name"
	}

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// Columns describes the columns of table via PRAGMA table_info, which
// both engines support.
func (r *SQLRepository) Columns(table string) ([]model.TableColumn, error) {
	if !identPattern.MatchString(table) {
		return nil, model.ErrInvalidParameter(fmt.Sprintf("invalid table name: %q", table))
	}

	rows, err := r.db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []model.TableColumn
	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return nil, err
		}
		cols = append(cols, model.TableColumn{Name: name, Type: ctype})
	}
	return cols, rows.Err()
}

// TotalRows counts all rows of table.
func (r *SQLRepository) TotalRows(table string) (int64, error) {
	if !identPattern.MatchString(table) {
		return 0, model.ErrInvalidParameter(fmt.Sprintf("invalid table name: %q", table))
	}

	var count int64
	err := r.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count)
	return count, err
}

// CountNonNull counts rows of table where every listed column is
// non-NULL, e.g. games that have both scores recorded.
func (r *SQLRepository) CountNonNull(table string, columns ...string) (int64, error) {
	if !identPattern.MatchString(table) {
		return 0, model.ErrInvalidParameter(fmt.Sprintf("invalid table name: %q", table))
	}
	where := ""
	for i, col := range columns {
		if !identPattern.MatchString(col) {
			return 0, model.ErrInvalidParameter(fmt.Sprintf("invalid column name: %q", col))
		}
		if i > 0 {
			where += " AND "
		}
		where += col + " IS NOT NULL"
	}
	if where == "" {
		return r.TotalRows(table)
	}

	var count int64
	err := r.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", table, where)).Scan(&count)
	return count, err
}

// RecentRows returns up to limit rows of table ordered by dateField
// descending, every value rendered as a string ("NULL" for NULLs).
func (r *SQLRepository) RecentRows(table, dateField string, limit int) ([]map[string]string, error) {
	if !identPattern.MatchString(table) || !identPattern.MatchString(dateField) {
		return nil, model.ErrInvalidParameter("invalid table or column name")
	}

	query := fmt.Sprintf("SELECT * FROM %s ORDER BY %s DESC LIMIT ?", table, dateField)
	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var result []map[string]string
	for rows.Next() {
		values := make([]sql.NullString, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(map[string]string, len(cols))
		for i, col := range cols {
			if values[i].Valid {
				row[col] = values[i].String
			} else {
				row[col] = "NULL"
			}
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// GetStats returns coarse table statistics for the monitoring endpoint.
func (r *SQLRepository) GetStats() (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	total, err := r.TotalRows(r.table)
	if err != nil {
		return nil, err
	}
	stats["table"] = r.table
	stats["total_rows"] = total

	return stats, nil
}
