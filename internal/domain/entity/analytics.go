package entity

// MenuStats holds the headline counters of the analytics snapshot.
type MenuStats struct {
	TotalItems      int64 `json:"totalItems"`
	TotalCategories int64 `json:"totalCategories"`
	AvailableItems  int64 `json:"availableItems"`
	RecentUpdates   int64 `json:"recentUpdates"`
}

// CategoryShare is one row of the category breakdown.
type CategoryShare struct {
	Category   string `json:"category"`
	Count      int64  `json:"count"`
	Percentage int    `json:"percentage"`
}

// PriceStats summarises prices across every menu item.
type PriceStats struct {
	AvgPrice float64 `json:"avgPrice"`
	MinPrice float64 `json:"minPrice"`
	MaxPrice float64 `json:"maxPrice"`
}

// AnalyticsSnapshot is the full analytics view computed for one request.
type AnalyticsSnapshot struct {
	Stats             MenuStats       `json:"stats"`
	CategoryBreakdown []CategoryShare `json:"categoryBreakdown"`
	RecentActivity    []*Activity     `json:"recentActivity"`
	PriceStats        PriceStats      `json:"priceStats"`
}
