package submission_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/masterly/core/submission"
	"github.com/trezcool/masterly/storage/database/mockdb"
)

func newService(t *testing.T) *submission.Service {
	db, err := mockdb.Open()
	require.NoError(t, err)
	return submission.NewService(mockdb.NewSubmissionRepository(db))
}

func TestService_Query(t *testing.T) {
	svc := newService(t)

	page, err := svc.Query(context.Background(), submission.QueryFilter{Search: "spam", Status: submission.StatusPending})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Sarah Chen", page.Items[0].User)
	assert.Equal(t, "Ahmed Hassan", page.Items[1].User)
	assert.False(t, page.Items[0].IsGraded())
	assert.Equal(t, "Showing 1 to 2 of 1,247 submissions", page.Summary("submissions"))

	page, err = svc.Query(context.Background(), submission.QueryFilter{Search: "yuki"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.True(t, page.Items[0].IsGraded())
}

func TestService_Counts(t *testing.T) {
	counts, err := newService(t).Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		submission.StatusPending:  3,
		submission.StatusReviewed: 2,
		submission.StatusApproved: 2,
		submission.StatusRejected: 1,
	}, counts)
}
