// Package storagemock has mocks for the storage repositories.
package storagemock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/aragroup1/seoctl/internal/model"
)

// MockRepository is a mock of storage.Repository.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) SaveWebsite(ctx context.Context, website model.Website) error {
	args := m.Called(ctx, website)
	return args.Error(0)
}

func (m *MockRepository) GetWebsite(ctx context.Context, id string) (*model.Website, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Website), args.Error(1)
}

func (m *MockRepository) GetWebsiteByDomain(ctx context.Context, domain string) (*model.Website, error) {
	args := m.Called(ctx, domain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Website), args.Error(1)
}

func (m *MockRepository) ListWebsites(ctx context.Context) ([]model.Website, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Website), args.Error(1)
}

func (m *MockRepository) DeleteWebsite(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) SaveAuditReport(ctx context.Context, report model.AuditReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockRepository) LatestAuditReport(ctx context.Context, websiteID string) (*model.AuditReport, error) {
	args := m.Called(ctx, websiteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuditReport), args.Error(1)
}

func (m *MockRepository) ListAuditReports(ctx context.Context, websiteID string, limit int) ([]model.AuditSummary, error) {
	args := m.Called(ctx, websiteID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AuditSummary), args.Error(1)
}
