package auditstatus_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aragroup1/seoctl/internal/apiclient/apiclientmock"
	"github.com/aragroup1/seoctl/internal/app/auditstatus"
	"github.com/aragroup1/seoctl/internal/model"
	"github.com/aragroup1/seoctl/internal/storage/storagemock"
)

func reportFixture() *model.AuditReport {
	return &model.AuditReport{
		ID:          "audit-1",
		WebsiteID:   "site-1",
		HealthScore: 72,
		Issues: []model.AuditIssue{
			{ID: "i1", Category: model.IssueCategoryTechnical, Severity: model.IssueSeverityCritical, Implementation: model.ImplementationStatusVerified},
			{ID: "i2", Category: model.IssueCategoryContent, Severity: model.IssueSeverityLow, Implementation: model.ImplementationStatusNotStarted},
			{ID: "i3", Category: model.IssueCategoryTechnical, Severity: model.IssueSeverityLow, Implementation: model.ImplementationStatusFailed},
		},
		CompletedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
}

func newService(t *testing.T, api *apiclientmock.MockClient, repo *storagemock.MockRepository) *auditstatus.Service {
	t.Helper()
	svc, err := auditstatus.NewService(auditstatus.ServiceConfig{APIClient: api, Repository: repo})
	require.NoError(t, err)
	return svc
}

func TestServiceRun(t *testing.T) {
	tests := map[string]struct {
		req        auditstatus.Request
		setupMocks func(api *apiclientmock.MockClient, repo *storagemock.MockRepository)
		expErr     bool
		errMsg     string
		check      func(t *testing.T, resp *auditstatus.Response)
	}{
		"Missing website id returns error": {
			req:        auditstatus.Request{},
			setupMocks: func(api *apiclientmock.MockClient, repo *storagemock.MockRepository) {},
			expErr:     true,
			errMsg:     "website id is required",
		},

		"Cache hit never touches the API": {
			req: auditstatus.Request{WebsiteID: "site-1"},
			setupMocks: func(api *apiclientmock.MockClient, repo *storagemock.MockRepository) {
				repo.On("LatestAuditReport", mock.Anything, "site-1").Return(reportFixture(), nil)
			},
			check: func(t *testing.T, resp *auditstatus.Response) {
				assert.Equal(t, "audit-1", resp.Report.ID)
				assert.Len(t, resp.Issues, 3)
				assert.Equal(t, model.ImplementationSummary{Verified: 1, Failed: 1, Pending: 1}, resp.Implementation)
			},
		},

		"Cache miss falls back to the API and caches": {
			req: auditstatus.Request{WebsiteID: "site-1"},
			setupMocks: func(api *apiclientmock.MockClient, repo *storagemock.MockRepository) {
				repo.On("LatestAuditReport", mock.Anything, "site-1").Return((*model.AuditReport)(nil), model.ErrNotFound)
				api.On("LatestAudit", mock.Anything, "site-1").Return(reportFixture(), nil)
				repo.On("SaveAuditReport", mock.Anything, *reportFixture()).Return(nil)
			},
			check: func(t *testing.T, resp *auditstatus.Response) {
				assert.Equal(t, "audit-1", resp.Report.ID)
			},
		},

		"Refresh skips the cache and asks the backend for implementation status": {
			req: auditstatus.Request{WebsiteID: "site-1", Refresh: true},
			setupMocks: func(api *apiclientmock.MockClient, repo *storagemock.MockRepository) {
				api.On("LatestAudit", mock.Anything, "site-1").Return(reportFixture(), nil)
				api.On("ImplementationStatus", mock.Anything, "site-1").Return(&model.ImplementationSummary{Verified: 2, Failed: 1, Pending: 0}, nil)
				repo.On("SaveAuditReport", mock.Anything, mock.Anything).Return(nil)
			},
			check: func(t *testing.T, resp *auditstatus.Response) {
				assert.Equal(t, "audit-1", resp.Report.ID)
				assert.Equal(t, model.ImplementationSummary{Verified: 2, Failed: 1, Pending: 0}, resp.Implementation)
			},
		},

		"Refresh keeps the report's own tally when implementation status fails": {
			req: auditstatus.Request{WebsiteID: "site-1", Refresh: true},
			setupMocks: func(api *apiclientmock.MockClient, repo *storagemock.MockRepository) {
				api.On("LatestAudit", mock.Anything, "site-1").Return(reportFixture(), nil)
				api.On("ImplementationStatus", mock.Anything, "site-1").Return(nil, errors.New("boom"))
				repo.On("SaveAuditReport", mock.Anything, mock.Anything).Return(nil)
			},
			check: func(t *testing.T, resp *auditstatus.Response) {
				assert.Equal(t, model.ImplementationSummary{Verified: 1, Failed: 1, Pending: 1}, resp.Implementation)
			},
		},

		"Issue filter is applied": {
			req: auditstatus.Request{
				WebsiteID: "site-1",
				Filter:    model.IssueFilter{Category: model.IssueCategoryTechnical, Severity: model.IssueSeverityLow},
			},
			setupMocks: func(api *apiclientmock.MockClient, repo *storagemock.MockRepository) {
				repo.On("LatestAuditReport", mock.Anything, "site-1").Return(reportFixture(), nil)
			},
			check: func(t *testing.T, resp *auditstatus.Response) {
				require.Len(t, resp.Issues, 1)
				assert.Equal(t, "i3", resp.Issues[0].ID)
			},
		},

		"API error is propagated": {
			req: auditstatus.Request{WebsiteID: "site-1", Refresh: true},
			setupMocks: func(api *apiclientmock.MockClient, repo *storagemock.MockRepository) {
				api.On("LatestAudit", mock.Anything, "site-1").Return((*model.AuditReport)(nil), model.ErrNotFound)
			},
			expErr: true,
			errMsg: "could not get latest audit",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			api := &apiclientmock.MockClient{}
			repo := &storagemock.MockRepository{}
			tt.setupMocks(api, repo)

			svc := newService(t, api, repo)
			resp, err := svc.Run(context.Background(), tt.req)

			if tt.expErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
				tt.check(t, resp)
			}
			api.AssertExpectations(t)
			repo.AssertExpectations(t)
		})
	}
}

func TestServiceRunCacheHitSkipsAPI(t *testing.T) {
	api := &apiclientmock.MockClient{}
	repo := &storagemock.MockRepository{}
	repo.On("LatestAuditReport", mock.Anything, "site-1").Return(reportFixture(), nil)

	svc := newService(t, api, repo)
	_, err := svc.Run(context.Background(), auditstatus.Request{WebsiteID: "site-1"})

	require.NoError(t, err)
	api.AssertNotCalled(t, "LatestAudit", mock.Anything, mock.Anything)
}

func TestServiceRunValidationErrorIsNotValid(t *testing.T) {
	svc := newService(t, &apiclientmock.MockClient{}, &storagemock.MockRepository{})

	_, err := svc.Run(context.Background(), auditstatus.Request{})

	assert.True(t, errors.Is(err, model.ErrNotValid))
}
