package websiteadd_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aragroup1/seoctl/internal/apiclient/apiclientmock"
	"github.com/aragroup1/seoctl/internal/app/websiteadd"
	"github.com/aragroup1/seoctl/internal/model"
	"github.com/aragroup1/seoctl/internal/storage/storagemock"
)

func newService(t *testing.T, api *apiclientmock.MockClient, repo *storagemock.MockRepository) *websiteadd.Service {
	t.Helper()
	svc, err := websiteadd.NewService(websiteadd.ServiceConfig{APIClient: api, Repository: repo})
	require.NoError(t, err)
	return svc
}

func TestServiceRun(t *testing.T) {
	registered := &model.Website{
		ID:        "site-9",
		Domain:    "example.com",
		SiteType:  model.SiteTypeShopify,
		CreatedAt: time.Now().UTC(),
	}

	tests := map[string]struct {
		req        websiteadd.Request
		setupMocks func(api *apiclientmock.MockClient, repo *storagemock.MockRepository)
		expErr     bool
		errIs      error
	}{
		"Successful registration": {
			req: websiteadd.Request{Website: model.NewWebsite{Domain: "example.com", SiteType: model.SiteTypeShopify}},
			setupMocks: func(api *apiclientmock.MockClient, repo *storagemock.MockRepository) {
				api.On("RegisterWebsite", mock.Anything, mock.Anything).Return(registered, nil)
				repo.On("SaveWebsite", mock.Anything, *registered).Return(nil)
			},
		},

		"Missing domain fails validation": {
			req:        websiteadd.Request{Website: model.NewWebsite{SiteType: model.SiteTypeCustom}},
			setupMocks: func(api *apiclientmock.MockClient, repo *storagemock.MockRepository) {},
			expErr:     true,
			errIs:      model.ErrNotValid,
		},

		"Domain with scheme fails validation": {
			req:        websiteadd.Request{Website: model.NewWebsite{Domain: "https://example.com"}},
			setupMocks: func(api *apiclientmock.MockClient, repo *storagemock.MockRepository) {},
			expErr:     true,
			errIs:      model.ErrNotValid,
		},

		"Backend conflict is propagated": {
			req: websiteadd.Request{Website: model.NewWebsite{Domain: "example.com"}},
			setupMocks: func(api *apiclientmock.MockClient, repo *storagemock.MockRepository) {
				api.On("RegisterWebsite", mock.Anything, mock.Anything).
					Return((*model.Website)(nil), model.ErrAlreadyExists)
			},
			expErr: true,
			errIs:  model.ErrAlreadyExists,
		},

		"Cache failure does not fail the registration": {
			req: websiteadd.Request{Website: model.NewWebsite{Domain: "example.com"}},
			setupMocks: func(api *apiclientmock.MockClient, repo *storagemock.MockRepository) {
				api.On("RegisterWebsite", mock.Anything, mock.Anything).Return(registered, nil)
				repo.On("SaveWebsite", mock.Anything, mock.Anything).Return(errors.New("disk full"))
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			api := &apiclientmock.MockClient{}
			repo := &storagemock.MockRepository{}
			tt.setupMocks(api, repo)

			svc := newService(t, api, repo)
			website, err := svc.Run(context.Background(), tt.req)

			if tt.expErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.errIs))
			} else {
				require.NoError(t, err)
				assert.Equal(t, registered, website)
			}
			api.AssertExpectations(t)
			repo.AssertExpectations(t)
		})
	}
}
