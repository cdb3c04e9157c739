package admin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/masterly/core/admin"
	"github.com/trezcool/masterly/storage/database/mockdb"
)

func newService(t *testing.T) *admin.Service {
	db, err := mockdb.Open()
	require.NoError(t, err)
	return admin.NewService(mockdb.NewAdminRepository(db))
}

func chartTitles(charts []admin.Chart) []string {
	res := make([]string, 0, len(charts))
	for _, c := range charts {
		res = append(res, c.Title)
	}
	return res
}

func TestService_Analytics(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		tab  string
		want []string
	}{
		{tab: admin.AnalyticsOverview, want: []string{"Signups vs Active Users", "Device Distribution", "Time Spent per Session"}},
		{tab: admin.AnalyticsLearning, want: []string{"Lesson Drop-off Analysis", "Course Performance Heatmap"}},
		{tab: admin.AnalyticsGrowth, want: []string{"Cohort Retention Analysis", "Conversion Funnel", "Revenue by Source"}},
		{tab: admin.AnalyticsAI, want: []string{"AI Feature Usage", "Prompt Success Rate"}},
		{tab: "unknown", want: []string{"Signups vs Active Users", "Device Distribution", "Time Spent per Session"}},
	}
	for _, tt := range tests {
		t.Run(tt.tab, func(t *testing.T) {
			stats, charts, err := svc.Analytics(context.Background(), tt.tab)
			require.NoError(t, err)
			assert.Len(t, stats, 4)
			assert.Equal(t, tt.want, chartTitles(charts))
		})
	}
}

func TestSeries_Max(t *testing.T) {
	o, err := newService(t).Overview(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, o.Charts)
	assert.Equal(t, float64(6800), o.Charts[0].Series[0].Max())
	assert.Equal(t, float64(0), admin.Series{}.Max())
}

func TestRole_Allowed(t *testing.T) {
	roles, err := newService(t).Roles(context.Background())
	require.NoError(t, err)

	support := roles[3]
	require.Equal(t, "Support", support.Name)
	assert.True(t, support.Allowed("users", "write"))
	assert.False(t, support.Allowed("users", "delete"))
	assert.False(t, support.Allowed("analytics", "read"))
	assert.False(t, support.Allowed("billing", "read"), "unknown sections are denied")
}

func TestService_NotificationTemplates(t *testing.T) {
	ts, err := newService(t).NotificationTemplates(context.Background())
	require.NoError(t, err)
	require.Len(t, ts, 6)
	assert.Equal(t, admin.NotificationTemplate{Name: "Course Completion", Channel: "In-app + Email", LastUsed: "1 week ago"}, ts[1])
}
