package auditrun_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aragroup1/seoctl/internal/apiclient/apiclientmock"
	"github.com/aragroup1/seoctl/internal/app/auditrun"
	"github.com/aragroup1/seoctl/internal/model"
	"github.com/aragroup1/seoctl/internal/storage/storagemock"
)

func testPolicy() model.PollPolicy {
	return model.PollPolicy{Interval: 10 * time.Millisecond, Timeout: 5 * time.Second}
}

func finishedReport(completedAt time.Time) *model.AuditReport {
	return &model.AuditReport{
		ID:          "audit-1",
		WebsiteID:   "site-1",
		HealthScore: 83.2,
		Issues: []model.AuditIssue{
			{ID: "i1", Severity: model.IssueSeverityHigh, Title: "Missing sitemap"},
		},
		CompletedAt: completedAt,
	}
}

func TestNewService(t *testing.T) {
	tests := map[string]struct {
		cfg    auditrun.ServiceConfig
		expErr bool
		errMsg string
	}{
		"Valid config": {
			cfg: auditrun.ServiceConfig{
				APIClient:  &apiclientmock.MockClient{},
				Repository: &storagemock.MockRepository{},
				Policy:     testPolicy(),
			},
			expErr: false,
		},
		"Missing api client returns error": {
			cfg: auditrun.ServiceConfig{
				Repository: &storagemock.MockRepository{},
				Policy:     testPolicy(),
			},
			expErr: true,
			errMsg: "api client is required",
		},
		"Missing repository returns error": {
			cfg: auditrun.ServiceConfig{
				APIClient: &apiclientmock.MockClient{},
				Policy:    testPolicy(),
			},
			expErr: true,
			errMsg: "repository is required",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			svc, err := auditrun.NewService(tt.cfg)

			if tt.expErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, svc)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, svc)
			}
		})
	}
}

func newService(t *testing.T, api *apiclientmock.MockClient, repo *storagemock.MockRepository, policy model.PollPolicy) *auditrun.Service {
	t.Helper()
	svc, err := auditrun.NewService(auditrun.ServiceConfig{
		APIClient:  api,
		Repository: repo,
		Policy:     policy,
	})
	require.NoError(t, err)
	return svc
}

func TestServiceRunRequiresWebsiteID(t *testing.T) {
	svc := newService(t, &apiclientmock.MockClient{}, &storagemock.MockRepository{}, testPolicy())

	_, err := svc.Run(context.Background(), auditrun.Request{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNotValid))
}

func TestServiceRunSucceedsOnceReportIsNewer(t *testing.T) {
	api := &apiclientmock.MockClient{}
	repo := &storagemock.MockRepository{}

	stale := finishedReport(time.Now().UTC().Add(-time.Hour))
	fresh := finishedReport(time.Now().UTC().Add(time.Hour))

	api.On("RunAudit", mock.Anything, "site-1").Return(&model.JobHandle{ID: "job-1"}, nil)
	// Two polls still see the pre-trigger report, the third sees the new one.
	api.On("LatestAudit", mock.Anything, "site-1").Return(stale, nil).Twice()
	api.On("LatestAudit", mock.Anything, "site-1").Return(fresh, nil).Once()
	repo.On("SaveAuditReport", mock.Anything, *fresh).Return(nil)

	svc := newService(t, api, repo, testPolicy())
	report, err := svc.Run(context.Background(), auditrun.Request{WebsiteID: "site-1"})

	require.NoError(t, err)
	assert.Equal(t, fresh, report)
	api.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestServiceRunWaitsThroughNeverAudited(t *testing.T) {
	api := &apiclientmock.MockClient{}
	repo := &storagemock.MockRepository{}

	fresh := finishedReport(time.Now().UTC().Add(time.Hour))

	api.On("RunAudit", mock.Anything, "site-1").Return(&model.JobHandle{}, nil)
	api.On("LatestAudit", mock.Anything, "site-1").Return((*model.AuditReport)(nil), model.ErrNotFound).Once()
	api.On("LatestAudit", mock.Anything, "site-1").Return(fresh, nil).Once()
	repo.On("SaveAuditReport", mock.Anything, mock.Anything).Return(nil)

	svc := newService(t, api, repo, testPolicy())
	report, err := svc.Run(context.Background(), auditrun.Request{WebsiteID: "site-1"})

	require.NoError(t, err)
	assert.Equal(t, "audit-1", report.ID)
}

func TestServiceRunTriggerFailureNeverPolls(t *testing.T) {
	api := &apiclientmock.MockClient{}
	repo := &storagemock.MockRepository{}

	api.On("RunAudit", mock.Anything, "site-1").Return((*model.JobHandle)(nil), errors.New("backend down"))

	svc := newService(t, api, repo, testPolicy())
	_, err := svc.Run(context.Background(), auditrun.Request{WebsiteID: "site-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend down")
	api.AssertNotCalled(t, "LatestAudit", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "SaveAuditReport", mock.Anything, mock.Anything)
}

func TestServiceRunTransientPollFailuresAreRetried(t *testing.T) {
	api := &apiclientmock.MockClient{}
	repo := &storagemock.MockRepository{}

	fresh := finishedReport(time.Now().UTC().Add(time.Hour))

	api.On("RunAudit", mock.Anything, "site-1").Return(&model.JobHandle{ID: "job-1"}, nil)
	api.On("LatestAudit", mock.Anything, "site-1").Return((*model.AuditReport)(nil), errors.New("gateway timeout")).Twice()
	api.On("LatestAudit", mock.Anything, "site-1").Return(fresh, nil).Once()
	repo.On("SaveAuditReport", mock.Anything, mock.Anything).Return(nil)

	svc := newService(t, api, repo, testPolicy())
	report, err := svc.Run(context.Background(), auditrun.Request{WebsiteID: "site-1"})

	require.NoError(t, err)
	assert.Equal(t, "audit-1", report.ID)
}

func TestServiceRunGivesUpAfterMaxAttempts(t *testing.T) {
	api := &apiclientmock.MockClient{}
	repo := &storagemock.MockRepository{}

	stale := finishedReport(time.Now().UTC().Add(-time.Hour))

	api.On("RunAudit", mock.Anything, "site-1").Return(&model.JobHandle{ID: "job-1"}, nil)
	api.On("LatestAudit", mock.Anything, "site-1").Return(stale, nil)

	policy := testPolicy()
	policy.MaxAttempts = 3

	svc := newService(t, api, repo, policy)
	_, err := svc.Run(context.Background(), auditrun.Request{WebsiteID: "site-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not complete")
	repo.AssertNotCalled(t, "SaveAuditReport", mock.Anything, mock.Anything)
}

func TestServiceRunCacheFailureStillReturnsReport(t *testing.T) {
	api := &apiclientmock.MockClient{}
	repo := &storagemock.MockRepository{}

	fresh := finishedReport(time.Now().UTC().Add(time.Hour))

	api.On("RunAudit", mock.Anything, "site-1").Return(&model.JobHandle{ID: "job-1"}, nil)
	api.On("LatestAudit", mock.Anything, "site-1").Return(fresh, nil)
	repo.On("SaveAuditReport", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	svc := newService(t, api, repo, testPolicy())
	report, err := svc.Run(context.Background(), auditrun.Request{WebsiteID: "site-1"})

	require.NoError(t, err)
	assert.Equal(t, "audit-1", report.ID)
}
