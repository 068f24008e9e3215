package gateway

import (
	"context"
	"fmt"
	"net/http"

	"campaignhub/internal/domain"
)

// AnalyticsAPI reads the backend's aggregate reports.
type AnalyticsAPI struct {
	c *Client
}

func (a *AnalyticsAPI) DashboardMetrics(ctx context.Context) (domain.DashboardMetrics, error) {
	var out domain.DashboardMetrics
	err := a.c.do(ctx, http.MethodGet, "/analytics/metrics", nil, nil, &out)
	return out, err
}

func (a *AnalyticsAPI) CommunityCoverage(ctx context.Context) ([]domain.CoverageEntry, error) {
	var out []domain.CoverageEntry
	if err := a.c.do(ctx, http.MethodGet, "/analytics/coverage", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *AnalyticsAPI) FundingTrends(ctx context.Context) ([]domain.FundingTrendPoint, error) {
	var out []domain.FundingTrendPoint
	if err := a.c.do(ctx, http.MethodGet, "/analytics/funding-trends", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MLAPI reads forecasts from the recommendation service. The numbers are
// passed through as returned.
type MLAPI struct {
	c *Client
}

func (m *MLAPI) DonorMatches(ctx context.Context, communityID int64) ([]domain.DonorMatch, error) {
	var out []domain.DonorMatch
	if err := m.c.do(ctx, http.MethodGet, fmt.Sprintf("/ml/matches/%d", communityID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *MLAPI) PredictFunding(ctx context.Context, campaignID int64) (domain.FundingPrediction, error) {
	var out domain.FundingPrediction
	err := m.c.do(ctx, http.MethodGet, fmt.Sprintf("/ml/predict-funding/%d", campaignID), nil, nil, &out)
	return out, err
}

func (m *MLAPI) Recommendations(ctx context.Context) ([]domain.Recommendation, error) {
	var out []domain.Recommendation
	if err := m.c.do(ctx, http.MethodGet, "/ml/recommendations", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
