package competitoranalyze_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aragroup1/seoctl/internal/apiclient/apiclientmock"
	"github.com/aragroup1/seoctl/internal/app/competitoranalyze"
	"github.com/aragroup1/seoctl/internal/model"
)

func testPolicy() model.PollPolicy {
	return model.PollPolicy{Interval: 10 * time.Millisecond, Timeout: 5 * time.Second}
}

func newService(t *testing.T, api *apiclientmock.MockClient, policy model.PollPolicy) *competitoranalyze.Service {
	t.Helper()
	svc, err := competitoranalyze.NewService(competitoranalyze.ServiceConfig{APIClient: api, Policy: policy})
	require.NoError(t, err)
	return svc
}

func TestServiceRunSucceeds(t *testing.T) {
	api := &apiclientmock.MockClient{}

	fresh := &model.CompetitorReport{
		WebsiteID: "site-1",
		Competitors: []model.CompetitorEntry{
			{Domain: "rival.com", TrafficEstimate: 100000, ContentGaps: []string{"pricing comparisons"}},
		},
		AnalyzedAt: time.Now().UTC().Add(time.Hour),
	}

	api.On("AnalyzeCompetitors", mock.Anything, "site-1", []string{"rival.com"}).Return(&model.JobHandle{ID: "job-7"}, nil)
	api.On("CompetitorReport", mock.Anything, "site-1").Return((*model.CompetitorReport)(nil), model.ErrNotFound).Once()
	api.On("CompetitorReport", mock.Anything, "site-1").Return(fresh, nil).Once()

	svc := newService(t, api, testPolicy())
	report, err := svc.Run(context.Background(), competitoranalyze.Request{WebsiteID: "site-1", Domains: []string{"rival.com"}})

	require.NoError(t, err)
	assert.Equal(t, fresh, report)
	api.AssertExpectations(t)
}

func TestServiceRunStaleReportKeepsWaiting(t *testing.T) {
	api := &apiclientmock.MockClient{}

	stale := &model.CompetitorReport{WebsiteID: "site-1", AnalyzedAt: time.Now().UTC().Add(-time.Hour)}

	api.On("AnalyzeCompetitors", mock.Anything, "site-1", mock.Anything).Return(&model.JobHandle{}, nil)
	api.On("CompetitorReport", mock.Anything, "site-1").Return(stale, nil)

	policy := testPolicy()
	policy.MaxAttempts = 2

	svc := newService(t, api, policy)
	_, err := svc.Run(context.Background(), competitoranalyze.Request{WebsiteID: "site-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not complete")
}

func TestServiceRunTriggerFailure(t *testing.T) {
	api := &apiclientmock.MockClient{}
	api.On("AnalyzeCompetitors", mock.Anything, "site-1", mock.Anything).Return((*model.JobHandle)(nil), errors.New("backend down"))

	svc := newService(t, api, testPolicy())
	_, err := svc.Run(context.Background(), competitoranalyze.Request{WebsiteID: "site-1"})

	require.Error(t, err)
	api.AssertNotCalled(t, "CompetitorReport", mock.Anything, mock.Anything)
}

func TestServiceRunValidation(t *testing.T) {
	svc := newService(t, &apiclientmock.MockClient{}, testPolicy())

	_, err := svc.Run(context.Background(), competitoranalyze.Request{})
	assert.True(t, errors.Is(err, model.ErrNotValid))

	_, err = svc.Run(context.Background(), competitoranalyze.Request{WebsiteID: "site-1", Domains: []string{""}})
	assert.True(t, errors.Is(err, model.ErrNotValid))
}
