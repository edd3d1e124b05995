package repository

import (
	"sort"
	"sync"

	"SportsModelGo/internal/model"
)

// MemoryRepository is an in-memory tabular source: a slice of rows, each
// a field->value map. It backs tests and small ad-hoc datasets with the
// same query surface the SQL repository offers.
type MemoryRepository struct {
	mu   sync.RWMutex
	rows []map[string]string
}

// NewMemoryRepository creates a source over the given rows. The rows are
// not copied; callers hand over ownership.
func NewMemoryRepository(rows []map[string]string) *MemoryRepository {
	return &MemoryRepository{rows: rows}
}

// Append adds one row to the source.
func (r *MemoryRepository) Append(row map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, row)
}

// Close satisfies the source contract; nothing to release.
func (r *MemoryRepository) Close() error {
	return nil
}

// HasField reports whether every row exposes field. An empty source
// vacuously has any field.
func (r *MemoryRepository) HasField(field string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, row := range r.rows {
		if _, ok := row[field]; !ok {
			return false, nil
		}
	}
	return true, nil
}

// CountSince counts rows whose field value is >= threshold by string
// comparison.
func (r *MemoryRepository) CountSince(field, threshold string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, row := range r.rows {
		if row[field] >= threshold {
			count++
		}
	}
	return count, nil
}

// DateRange returns the (min, max) of field among rows >= threshold, or
// nil when nothing matches.
func (r *MemoryRepository) DateRange(field, threshold string) (*model.DateRange, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var rng *model.DateRange
	for _, row := range r.rows {
		v := row[field]
		if v < threshold {
			continue
		}
		if rng == nil {
			rng = &model.DateRange{Min: v, Max: v}
			continue
		}
		if v < rng.Min {
			rng.Min = v
		}
		if v > rng.Max {
			rng.Max = v
		}
	}
	return rng, nil
}

// Years returns the distinct year prefixes of field across all rows,
// ascending.
func (r *MemoryRepository) Years(field string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var years []string
	for _, row := range r.rows {
		year := yearPrefix(row[field])
		if !seen[year] {
			seen[year] = true
			years = append(years, year)
		}
	}
	sort.Strings(years)
	return years, nil
}

// YearCounts groups all rows by year prefix, ascending by year.
func (r *MemoryRepository) YearCounts(field string) ([]model.YearCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	grouped := make(map[string]int64)
	for _, row := range r.rows {
		grouped[yearPrefix(row[field])]++
	}

	counts := make([]model.YearCount, 0, len(grouped))
	for year, count := range grouped {
		counts = append(counts, model.YearCount{Year: year, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Year < counts[j].Year })
	return counts, nil
}

// yearPrefix mirrors SUBSTR(field, 1, 4): values shorter than 4
// characters group under themselves.
func yearPrefix(s string) string {
	if len(s) < 4 {
		return s
	}
	return s[:4]
}
