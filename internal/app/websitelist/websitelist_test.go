package websitelist_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aragroup1/seoctl/internal/apiclient/apiclientmock"
	"github.com/aragroup1/seoctl/internal/app/websitelist"
	"github.com/aragroup1/seoctl/internal/model"
	"github.com/aragroup1/seoctl/internal/storage/storagemock"
)

func websitesFixture() []model.Website {
	return []model.Website{
		{ID: "site-1", Domain: "example.com", SiteType: model.SiteTypeCustom, CreatedAt: time.Now().UTC()},
		{ID: "site-2", Domain: "other.com", SiteType: model.SiteTypeWordpress, CreatedAt: time.Now().UTC()},
	}
}

func newService(t *testing.T, api *apiclientmock.MockClient, repo *storagemock.MockRepository) *websitelist.Service {
	t.Helper()
	svc, err := websitelist.NewService(websitelist.ServiceConfig{APIClient: api, Repository: repo})
	require.NoError(t, err)
	return svc
}

func TestServiceRunMirrorsToCache(t *testing.T) {
	api := &apiclientmock.MockClient{}
	repo := &storagemock.MockRepository{}

	websites := websitesFixture()
	api.On("ListWebsites", mock.Anything).Return(websites, nil)
	repo.On("SaveWebsite", mock.Anything, websites[0]).Return(nil)
	repo.On("SaveWebsite", mock.Anything, websites[1]).Return(nil)

	svc := newService(t, api, repo)
	got, err := svc.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, websites, got)
	repo.AssertExpectations(t)
}

func TestServiceRunFallsBackToCache(t *testing.T) {
	api := &apiclientmock.MockClient{}
	repo := &storagemock.MockRepository{}

	api.On("ListWebsites", mock.Anything).Return(([]model.Website)(nil), errors.New("connection refused"))
	repo.On("ListWebsites", mock.Anything).Return(websitesFixture(), nil)

	svc := newService(t, api, repo)
	got, err := svc.Run(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestServiceRunEmptyCacheReturnsAPIError(t *testing.T) {
	api := &apiclientmock.MockClient{}
	repo := &storagemock.MockRepository{}

	api.On("ListWebsites", mock.Anything).Return(([]model.Website)(nil), errors.New("connection refused"))
	repo.On("ListWebsites", mock.Anything).Return([]model.Website{}, nil)

	svc := newService(t, api, repo)
	_, err := svc.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
