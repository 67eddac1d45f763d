package analytics

import (
	"github.com/shopspring/decimal"
)

// Service answers analytics queries. Figures are fixed placeholders until a
// real order store is wired in; only request validation is authoritative.
type Service struct{}

// NewService creates a new analytics service.
func NewService() *Service {
	return &Service{}
}

type orderFigures struct {
	orders  int64
	revenue decimal.Decimal
}

var (
	stubDaily = orderFigures{orders: 128, revenue: decimal.RequireFromString("15420.50")}

	stubTrend = []orderFigures{
		{orders: 42, revenue: decimal.RequireFromString("5040.00")},
		{orders: 57, revenue: decimal.RequireFromString("6897.35")},
	}

	stubTiers = []struct {
		tier      string
		customers int64
	}{
		{tier: "STANDARD", customers: 820},
		{tier: "GOLD", customers: 150},
		{tier: "PLATINUM", customers: 30},
	}
)

// DailySummary returns order totals for one calendar date.
func (s *Service) DailySummary(date string) DailySummaryResponse {
	return DailySummaryResponse{
		Date:          date,
		TotalOrders:   stubDaily.orders,
		GrossRevenue:  stubDaily.revenue.InexactFloat64(),
		AvgOrderValue: averageOrderValue(stubDaily).InexactFloat64(),
	}
}

// Trend returns order totals bucketed by interval between from and to.
// The first placeholder point is anchored at from and the last at to.
func (s *Service) Trend(from, to string, interval Interval) TrendResponse {
	starts := []string{from, to}
	points := make([]TrendPoint, len(stubTrend))
	for i, f := range stubTrend {
		points[i] = TrendPoint{
			BucketStart:  starts[i],
			TotalOrders:  f.orders,
			GrossRevenue: f.revenue.InexactFloat64(),
		}
	}
	return TrendResponse{
		From:     from,
		To:       to,
		Interval: interval,
		Points:   points,
	}
}

// TierDistribution returns customer counts per tier on date.
func (s *Service) TierDistribution(date string) TierDistributionResponse {
	var total int64
	for _, t := range stubTiers {
		total += t.customers
	}

	tiers := make([]TierCount, len(stubTiers))
	for i, t := range stubTiers {
		share := decimal.NewFromInt(t.customers).
			Mul(decimal.NewFromInt(100)).
			DivRound(decimal.NewFromInt(total), 1)
		tiers[i] = TierCount{
			Tier:      t.tier,
			Customers: t.customers,
			Share:     share.InexactFloat64(),
		}
	}
	return TierDistributionResponse{Date: date, Tiers: tiers}
}

// averageOrderValue is revenue/orders rounded half-up to cents; zero orders
// yields zero.
func averageOrderValue(f orderFigures) decimal.Decimal {
	if f.orders == 0 {
		return decimal.Zero
	}
	return f.revenue.DivRound(decimal.NewFromInt(f.orders), 2)
}
