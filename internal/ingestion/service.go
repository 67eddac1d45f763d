package ingestion

import (
	"context"
	"net/http"

	"github.com/aevon-lab/notification-stats/internal/core/aggregation"
	"github.com/gin-gonic/gin"
)

// Service ties the bus manager to the counters it feeds and exposes the
// counters read-only over HTTP.
type Service struct {
	manager *Manager
	stats   *aggregation.StatsAggregator
}

func NewService(manager *Manager, stats *aggregation.StatsAggregator) *Service {
	if manager == nil {
		panic("ingestion: manager must not be nil")
	}
	if stats == nil {
		panic("ingestion: stats must not be nil")
	}
	return &Service{
		manager: manager,
		stats:   stats,
	}
}

// Run blocks until ctx is cancelled and the bus connection is closed.
func (s *Service) Run(ctx context.Context) error {
	return s.manager.Run(ctx)
}

// RegisterRoutes registers the ingestion service routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/notifications/stats", s.StatsHandler)
}

// StatsHandler returns the current counters. It never mutates them.
func (s *Service) StatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.stats.Snapshot())
}
