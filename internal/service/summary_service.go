package service

import (
	"crypto/md5"
	"fmt"
	"sync/atomic"
	"time"

	"SportsModelGo/internal/cache/lru"
	"SportsModelGo/internal/model"
	"SportsModelGo/pkg/common"
	"SportsModelGo/pkg/json"

	"github.com/sirupsen/logrus"
)

// Source is any read-only tabular capability the reporter can run over.
// Implementations must not mutate their data during a query and must be
// safe for concurrent readers.
type Source interface {
	HasField(field string) (bool, error)
	CountSince(field, threshold string) (int64, error)
	DateRange(field, threshold string) (*model.DateRange, error)
	Years(field string) ([]string, error)
	YearCounts(field string) ([]model.YearCount, error)
}

// Summarize runs the four reporting queries against source and returns
// the assembled result: the count and date range of rows at or after
// threshold, plus the distinct years and per-year counts over the whole
// table. It performs no mutation and is deterministic for a fixed
// snapshot of source.
func Summarize(source Source, field, threshold string) (*model.Summary, error) {
	if _, err := time.Parse("2006-01-02", threshold); err != nil {
		return nil, model.ErrInvalidParameter(fmt.Sprintf("threshold must be YYYY-MM-DD, got %q", threshold))
	}

	ok, err := source.HasField(field)
	if err != nil {
		return nil, readErr("check field", err)
	}
	if !ok {
		return nil, model.ErrFieldNotFound(fmt.Sprintf("no column %q in source", field))
	}

	count, err := source.CountSince(field, threshold)
	if err != nil {
		return nil, readErr("count since threshold", err)
	}

	// The range is nil exactly when nothing matched; an empty match is
	// a valid result, not an error.
	rng, err := source.DateRange(field, threshold)
	if err != nil {
		return nil, readErr("date range", err)
	}

	years, err := source.Years(field)
	if err != nil {
		return nil, readErr("distinct years", err)
	}
	if years == nil {
		years = []string{}
	}

	yearCounts, err := source.YearCounts(field)
	if err != nil {
		return nil, readErr("year counts", err)
	}
	if yearCounts == nil {
		yearCounts = []model.YearCount{}
	}

	var total int64
	for _, yc := range yearCounts {
		total += yc.Count
	}

	return &model.Summary{
		Field:         field,
		Threshold:     threshold,
		FilteredCount: count,
		FilteredRange: rng,
		Years:         years,
		YearCounts:    yearCounts,
		TotalRows:     total,
	}, nil
}

// readErr keeps the error taxonomy: anything the source itself raised
// passes through, raw driver failures become SourceUnavailable.
func readErr(op string, err error) error {
	if _, ok := err.(*model.SportsError); ok {
		return err
	}
	return model.ErrSourceUnavailable(fmt.Sprintf("%s: %v", op, err))
}

// SummaryService serves summaries over one source, with an optional LRU
// response cache in front of the queries.
type SummaryService struct {
	source    Source
	cache     *lru.Cache
	cacheHits int64
	cacheMiss int64
}

// NewSummaryService creates a service over source. cacheSize <= 0
// disables caching, which is what the one-shot CLI wants.
func NewSummaryService(source Source, cacheSize int64, cacheTTL time.Duration) *SummaryService {
	s := &SummaryService{source: source}

	if cacheSize > 0 {
		logrus.Infof("Initializing SummaryService with cache size: %.2f MB", float64(cacheSize)/(1024*1024))
		s.cache = lru.NewCache(cacheSize, cacheTTL, func(key string, value lru.Value) {
			logrus.Debugf("Cache evicted: %s", key)
		})
	}

	return s
}

// Query runs one summary request and wraps the outcome in the response
// envelope. Errors are reported through the envelope status, never as a
// Go error, so the handler has a single path.
func (s *SummaryService) Query(req *model.SummaryRequest) (*model.SummaryResponse, error) {
	cacheKey := s.generateCacheKey("summary", req)

	if s.cache != nil {
		if cached, ok := s.cache.Get(cacheKey); ok {
			atomic.AddInt64(&s.cacheHits, 1)
			logrus.Debugf("Cache hit: %s", cacheKey)

			var response model.SummaryResponse
			if err := json.Unmarshal(cached.(common.ByteView).ByteSlice(), &response); err == nil {
				return &response, nil
			}
		}
		atomic.AddInt64(&s.cacheMiss, 1)
		logrus.Debugf("Cache miss: %s", cacheKey)
	}

	summary, err := Summarize(s.source, req.Field, req.Threshold)
	if err != nil {
		return &model.SummaryResponse{
			StatusCode: model.ErrorCode(err),
			StatusMsg:  err.Error(),
			Data:       nil,
		}, nil
	}

	response := &model.SummaryResponse{
		StatusCode: 0,
		StatusMsg:  "success",
		Data:       summary,
	}

	if s.cache != nil {
		if data, err := json.Marshal(response); err == nil {
			s.cache.Add(cacheKey, common.NewByteView(data))
		}
	}

	return response, nil
}

// generateCacheKey hashes the request so equivalent queries share one
// cache entry.
func (s *SummaryService) generateCacheKey(prefix string, req interface{}) string {
	data, _ := json.Marshal(req)
	hash := md5.Sum(data)
	return fmt.Sprintf("%s:%x", prefix, hash)
}

// GetStats forwards the source statistics when the source provides any.
func (s *SummaryService) GetStats() (map[string]interface{}, error) {
	if provider, ok := s.source.(interface {
		GetStats() (map[string]interface{}, error)
	}); ok {
		return provider.GetStats()
	}
	return map[string]interface{}{}, nil
}

// GetCacheStats reports cache hit/miss counters.
func (s *SummaryService) GetCacheStats() map[string]interface{} {
	hits := atomic.LoadInt64(&s.cacheHits)
	miss := atomic.LoadInt64(&s.cacheMiss)
	total := hits + miss

	hitRate := 0.0
	if total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}

	entries := 0
	if s.cache != nil {
		entries = s.cache.Len()
	}

	return map[string]interface{}{
		"entries":  entries,
		"hits":     hits,
		"misses":   miss,
		"hit_rate": fmt.Sprintf("%.2f%%", hitRate),
	}
}

// ResetCacheStats zeroes the hit/miss counters.
func (s *SummaryService) ResetCacheStats() {
	atomic.StoreInt64(&s.cacheHits, 0)
	atomic.StoreInt64(&s.cacheMiss, 0)
}
