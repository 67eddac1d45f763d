package analytics

import (
	"net/http"

	httperr "github.com/aevon-lab/notification-stats/internal/core/errors"
	"github.com/gin-gonic/gin"
)

const (
	msgInvalidDate  = "Invalid or missing date query parameter"
	msgInvalidQuery = "Invalid query parameters"
)

// RegisterRoutes registers all analytics API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/analytics")
	g.GET("/orders/daily-summary", s.HandleDailySummary)
	g.GET("/orders/trend", s.HandleTrend)
	g.GET("/customers/tier-distribution", s.HandleTierDistribution)
}

// HandleDailySummary handles GET /analytics/orders/daily-summary?date=YYYY-MM-DD
func (s *Service) HandleDailySummary(c *gin.Context) {
	date := c.Query("date")
	if !ValidDate(date) {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{Error: msgInvalidDate})
		return
	}
	c.JSON(http.StatusOK, s.DailySummary(date))
}

// HandleTrend handles GET /analytics/orders/trend?from=&to=&interval=
func (s *Service) HandleTrend(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	interval := Interval(c.Query("interval"))

	// YYYY-MM-DD sorts lexicographically in chronological order.
	if !ValidDate(from) || !ValidDate(to) || !interval.Valid() || from > to {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{Error: msgInvalidQuery})
		return
	}
	c.JSON(http.StatusOK, s.Trend(from, to, interval))
}

// HandleTierDistribution handles GET /analytics/customers/tier-distribution?date=YYYY-MM-DD
func (s *Service) HandleTierDistribution(c *gin.Context) {
	date := c.Query("date")
	if !ValidDate(date) {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{Error: msgInvalidQuery})
		return
	}
	c.JSON(http.StatusOK, s.TierDistribution(date))
}
