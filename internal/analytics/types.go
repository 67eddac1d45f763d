package analytics

// DailySummaryResponse is returned by GET /analytics/orders/daily-summary.
type DailySummaryResponse struct {
	Date          string  `json:"date"`
	TotalOrders   int64   `json:"totalOrders"`
	GrossRevenue  float64 `json:"grossRevenue"`
	AvgOrderValue float64 `json:"avgOrderValue"`
}

// TrendPoint is one bucket of an order trend.
type TrendPoint struct {
	BucketStart  string  `json:"bucketStart"`
	TotalOrders  int64   `json:"totalOrders"`
	GrossRevenue float64 `json:"grossRevenue"`
}

// TrendResponse is returned by GET /analytics/orders/trend.
type TrendResponse struct {
	From     string       `json:"from"`
	To       string       `json:"to"`
	Interval Interval     `json:"interval"`
	Points   []TrendPoint `json:"points"`
}

// TierCount is the customer count of one tier.
type TierCount struct {
	Tier      string  `json:"tier"`
	Customers int64   `json:"customers"`
	Share     float64 `json:"share"` // percent of all customers
}

// TierDistributionResponse is returned by GET /analytics/customers/tier-distribution.
type TierDistributionResponse struct {
	Date  string      `json:"date"`
	Tiers []TierCount `json:"tiers"`
}
