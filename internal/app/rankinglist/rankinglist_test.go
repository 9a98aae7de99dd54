package rankinglist_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aragroup1/seoctl/internal/apiclient/apiclientmock"
	"github.com/aragroup1/seoctl/internal/app/rankinglist"
	"github.com/aragroup1/seoctl/internal/model"
)

func TestServiceRunTopFilter(t *testing.T) {
	api := &apiclientmock.MockClient{}
	api.On("ListRankings", mock.Anything, "site-1").Return([]model.Ranking{
		{Keyword: "a", Position: 3},
		{Keyword: "b", Position: 47},
		{Keyword: "c", Position: 10},
		{Keyword: "d", Position: 0}, // Not ranking at all.
	}, nil)

	svc, err := rankinglist.NewService(rankinglist.ServiceConfig{APIClient: api})
	require.NoError(t, err)

	rankings, err := svc.Run(context.Background(), rankinglist.Request{WebsiteID: "site-1", Top: 10})

	require.NoError(t, err)
	require.Len(t, rankings, 2)
	assert.Equal(t, "a", rankings[0].Keyword)
	assert.Equal(t, "c", rankings[1].Keyword)
}
