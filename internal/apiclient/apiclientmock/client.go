// Package apiclientmock contains a testify mock of the API client used by
// the application service tests.
package apiclientmock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/aragroup1/seoctl/internal/model"
)

// MockClient is a mock implementation of apiclient.Client.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) Health(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockClient) RegisterWebsite(ctx context.Context, website model.NewWebsite) (*model.Website, error) {
	args := m.Called(ctx, website)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Website), args.Error(1)
}

func (m *MockClient) ListWebsites(ctx context.Context) ([]model.Website, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Website), args.Error(1)
}

func (m *MockClient) GetWebsite(ctx context.Context, id string) (*model.Website, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Website), args.Error(1)
}

func (m *MockClient) RunAudit(ctx context.Context, websiteID string) (*model.JobHandle, error) {
	args := m.Called(ctx, websiteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobHandle), args.Error(1)
}

func (m *MockClient) LatestAudit(ctx context.Context, websiteID string) (*model.AuditReport, error) {
	args := m.Called(ctx, websiteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuditReport), args.Error(1)
}

func (m *MockClient) AuditHistory(ctx context.Context, websiteID string, limit int) ([]model.AuditSummary, error) {
	args := m.Called(ctx, websiteID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AuditSummary), args.Error(1)
}

func (m *MockClient) ImplementationStatus(ctx context.Context, websiteID string) (*model.ImplementationSummary, error) {
	args := m.Called(ctx, websiteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ImplementationSummary), args.Error(1)
}

func (m *MockClient) AnalyzeCompetitors(ctx context.Context, websiteID string, domains []string) (*model.JobHandle, error) {
	args := m.Called(ctx, websiteID, domains)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobHandle), args.Error(1)
}

func (m *MockClient) CompetitorReport(ctx context.Context, websiteID string) (*model.CompetitorReport, error) {
	args := m.Called(ctx, websiteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CompetitorReport), args.Error(1)
}

func (m *MockClient) ResearchKeywords(ctx context.Context, websiteID string, keywords []string) (*model.JobHandle, error) {
	args := m.Called(ctx, websiteID, keywords)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobHandle), args.Error(1)
}

func (m *MockClient) ListKeywords(ctx context.Context, websiteID string) ([]model.Keyword, error) {
	args := m.Called(ctx, websiteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Keyword), args.Error(1)
}

func (m *MockClient) ListRankings(ctx context.Context, websiteID string) ([]model.Ranking, error) {
	args := m.Called(ctx, websiteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Ranking), args.Error(1)
}

func (m *MockClient) GenerateStrategies(ctx context.Context, websiteID string) (*model.JobHandle, error) {
	args := m.Called(ctx, websiteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobHandle), args.Error(1)
}

func (m *MockClient) ListStrategies(ctx context.Context, websiteID string) ([]model.Strategy, error) {
	args := m.Called(ctx, websiteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Strategy), args.Error(1)
}

func (m *MockClient) Dashboard(ctx context.Context, websiteID string) (*model.Dashboard, error) {
	args := m.Called(ctx, websiteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dashboard), args.Error(1)
}

func (m *MockClient) ContentCalendar(ctx context.Context, websiteID string) ([]model.ContentPlanItem, error) {
	args := m.Called(ctx, websiteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContentPlanItem), args.Error(1)
}

func (m *MockClient) ListIntegrations(ctx context.Context) ([]model.Integration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Integration), args.Error(1)
}
