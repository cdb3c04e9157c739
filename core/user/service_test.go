package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/masterly/core/listing"
	"github.com/trezcool/masterly/core/user"
	"github.com/trezcool/masterly/storage/database/mockdb"
)

func newService(t *testing.T) *user.Service {
	db, err := mockdb.Open()
	require.NoError(t, err)
	return user.NewService(mockdb.NewUserRepository(db))
}

func names(users []user.User) []string {
	res := make([]string, 0, len(users))
	for _, u := range users {
		res = append(res, u.Name)
	}
	return res
}

func TestService_Query(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name   string
		filter user.QueryFilter
		want   []string
	}{
		{name: "search by name", filter: user.QueryFilter{Search: "marcus"}, want: []string{"Marcus Johnson"}},
		{name: "search is not trimmed", filter: user.QueryFilter{Search: "sarah chen "}, want: []string{}},
		{name: "search by email", filter: user.QueryFilter{Search: "KIM@"}, want: []string{"David Kim"}},
		{name: "status", filter: user.QueryFilter{Status: user.StatusSuspended}, want: []string{"James Wilson"}},
		{
			name:   "plan and status",
			filter: user.QueryFilter{Status: user.StatusActive, Plan: user.PlanEnterprise},
			want:   []string{"Marcus Johnson", "Lisa Thompson"},
		},
		{
			name:   "search and plan",
			filter: user.QueryFilter{Search: "a", Plan: user.PlanFree, Status: listing.All},
			want:   []string{"Elena Rodriguez", "James Wilson", "Yuki Tanaka"},
		},
		{name: "no match", filter: user.QueryFilter{Search: "zz"}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := svc.Query(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(page.Items))
			assert.Equal(t, len(tt.want), page.Count)
			assert.Equal(t, user.TotalLabel, page.TotalLabel)
		})
	}
}

func TestService_GetByEmail(t *testing.T) {
	svc := newService(t)

	usr, err := svc.GetByEmail(context.Background(), " Priya.Patel@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "PP", usr.Initials())

	_, err = svc.GetByEmail(context.Background(), "ghost@example.com")
	assert.Equal(t, user.ErrNotFound, err)
}

func TestService_Get(t *testing.T) {
	svc := newService(t)

	usr, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Sarah Chen", usr.Name)

	_, err = svc.Get(context.Background(), 999)
	assert.Equal(t, user.ErrNotFound, err)
}
