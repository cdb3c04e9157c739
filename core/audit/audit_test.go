package audit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/masterly/core/audit"
	"github.com/trezcool/masterly/storage/database/mockdb"
)

func TestService_Query(t *testing.T) {
	db, err := mockdb.Open()
	require.NoError(t, err)
	svc := audit.NewService(mockdb.NewAuditRepository(db))

	tests := []struct {
		name   string
		filter audit.QueryFilter
		want   []int
	}{
		{name: "all", filter: audit.QueryFilter{Action: "all"}, want: []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{name: "logins include failures", filter: audit.QueryFilter{Action: "login"}, want: []int{1, 3, 6}},
		{name: "updates", filter: audit.QueryFilter{Action: "update"}, want: []int{2}},
		{name: "deletions", filter: audit.QueryFilter{Action: "delete"}, want: []int{4}},
		{name: "search ip", filter: audit.QueryFilter{Search: "203.45"}, want: []int{3}},
		{name: "search user and action", filter: audit.QueryFilter{Search: "alex", Action: "login"}, want: []int{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := svc.Query(context.Background(), tt.filter)
			require.NoError(t, err)

			ids := make([]int, 0, len(page.Items))
			for _, e := range page.Items {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.want, ids)
			assert.Equal(t, audit.TotalLabel, page.TotalLabel)
		})
	}

	logins, err := svc.LoginHistory(context.Background())
	require.NoError(t, err)
	assert.Len(t, logins, 4)
}
