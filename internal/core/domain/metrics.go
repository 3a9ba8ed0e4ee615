package domain

// MetricsSummary mirrors the upstream /metrics/summary totals.
type MetricsSummary struct {
	Count int `json:"count"`
}

// DashboardSummary is the composed result of the dashboard's concurrent
// fetches: backend-wide totals next to what this user can actually see.
type DashboardSummary struct {
	TotalRecognitions   int  `json:"totalRecognitions"`
	VisibleRecognitions int  `json:"visibleRecognitions"`
	ScopeSize           int  `json:"scopeSize"`
	Unscoped            bool `json:"unscoped"`
}
