package calendarlist_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aragroup1/seoctl/internal/apiclient/apiclientmock"
	"github.com/aragroup1/seoctl/internal/app/calendarlist"
	"github.com/aragroup1/seoctl/internal/model"
)

func newService(t *testing.T, api *apiclientmock.MockClient) *calendarlist.Service {
	t.Helper()
	svc, err := calendarlist.NewService(calendarlist.ServiceConfig{APIClient: api})
	require.NoError(t, err)
	return svc
}

func TestServiceRunSortsByPublishDate(t *testing.T) {
	now := time.Now()
	api := &apiclientmock.MockClient{}
	api.On("ContentCalendar", mock.Anything, "site-1").Return([]model.ContentPlanItem{
		{ID: "later", PublishDate: now.Add(48 * time.Hour)},
		{ID: "soon", PublishDate: now.Add(24 * time.Hour)},
	}, nil)

	svc := newService(t, api)
	items, err := svc.Run(context.Background(), calendarlist.Request{WebsiteID: "site-1"})

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "soon", items[0].ID)
	assert.Equal(t, "later", items[1].ID)
}

func TestServiceRunAPIError(t *testing.T) {
	api := &apiclientmock.MockClient{}
	api.On("ContentCalendar", mock.Anything, "site-1").Return(nil, errors.New("boom"))

	svc := newService(t, api)
	_, err := svc.Run(context.Background(), calendarlist.Request{WebsiteID: "site-1"})

	assert.Error(t, err)
}

func TestServiceRunValidation(t *testing.T) {
	svc := newService(t, &apiclientmock.MockClient{})

	_, err := svc.Run(context.Background(), calendarlist.Request{})

	assert.True(t, errors.Is(err, model.ErrNotValid))
}
