package handler

import (
	"net/http"

	"SportsModelGo/internal/model"
	"SportsModelGo/internal/repository"
	"SportsModelGo/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type SummaryHandler struct {
	service *service.SummaryService
	repo    *repository.SQLRepository
}

func NewSummaryHandler(service *service.SummaryService, repo *repository.SQLRepository) *SummaryHandler {
	return &SummaryHandler{
		service: service,
		repo:    repo,
	}
}

// Summary runs one report.
// POST /sports/api/data/v1/summary
func (h *SummaryHandler) Summary(c *gin.Context) {
	var req model.SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.Errorf("bind request error: %v", err)
		c.JSON(http.StatusOK, model.SummaryResponse{
			StatusCode: model.CodeInvalidParameter,
			StatusMsg:  "invalid request: " + err.Error(),
			Data:       nil,
		})
		return
	}

	// Defaults match the reference diagnostic.
	if req.Field == "" {
		req.Field = "game_date"
	}
	if req.Threshold == "" {
		req.Threshold = "2025-01-01"
	}

	response, err := h.service.Query(&req)
	if err != nil {
		logrus.Errorf("summary query error: %v", err)
		c.JSON(http.StatusOK, model.SummaryResponse{
			StatusCode: model.CodeInternalError,
			StatusMsg:  err.Error(),
			Data:       nil,
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Overview describes every table in the database.
// GET /sports/api/data/v1/overview
func (h *SummaryHandler) Overview(c *gin.Context) {
	tables, err := h.repo.Tables()
	if err != nil {
		logrus.Errorf("list tables error: %v", err)
		c.JSON(http.StatusOK, model.OverviewResponse{
			StatusCode: model.ErrorCode(err),
			StatusMsg:  err.Error(),
			Data:       nil,
		})
		return
	}

	overviews := make([]*model.TableOverview, 0, len(tables))
	for _, table := range tables {
		cols, err := h.repo.Columns(table)
		if err != nil {
			logrus.Warnf("describe table %s error: %v", table, err)
			continue
		}
		total, err := h.repo.TotalRows(table)
		if err != nil {
			logrus.Warnf("count table %s error: %v", table, err)
			continue
		}
		overviews = append(overviews, &model.TableOverview{
			Name:      table,
			Columns:   cols,
			TotalRows: total,
		})
	}

	c.JSON(http.StatusOK, model.OverviewResponse{
		StatusCode: 0,
		StatusMsg:  "success",
		Data:       overviews,
	})
}

// Stats reports source and cache statistics.
// GET /sports/api/data/v1/stats
func (h *SummaryHandler) Stats(c *gin.Context) {
	stats, err := h.service.GetStats()
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"status_code": model.ErrorCode(err),
			"status_msg":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status_code": 0,
		"status_msg":  "success",
		"data": gin.H{
			"source": stats,
			"cache":  h.service.GetCacheStats(),
		},
	})
}
