package certificate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/masterly/core/certificate"
	"github.com/trezcool/masterly/storage/database/mockdb"
)

func TestService_Query(t *testing.T) {
	db, err := mockdb.Open()
	require.NoError(t, err)
	svc := certificate.NewService(mockdb.NewCertificateRepository(db))

	tests := []struct {
		name   string
		filter certificate.QueryFilter
		want   []string
	}{
		{name: "by id", filter: certificate.QueryFilter{Search: "cert-005"}, want: []string{"CERT-005"}},
		{name: "revoked", filter: certificate.QueryFilter{Status: certificate.StatusRevoked}, want: []string{"CERT-004"}},
		{
			name:   "course",
			filter: certificate.QueryFilter{Course: "Prompt Engineering"},
			want:   []string{"CERT-003", "CERT-007"},
		},
		{
			name:   "active fundamentals",
			filter: certificate.QueryFilter{Status: certificate.StatusActive, Course: "AI Fundamentals"},
			want:   []string{"CERT-001", "CERT-002", "CERT-008"},
		},
		{name: "nothing", filter: certificate.QueryFilter{Search: "nobody"}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := svc.Query(context.Background(), tt.filter)
			require.NoError(t, err)

			ids := make([]string, 0, len(page.Items))
			for _, c := range page.Items {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestService_Get(t *testing.T) {
	db, err := mockdb.Open()
	require.NoError(t, err)
	svc := certificate.NewService(mockdb.NewCertificateRepository(db))

	c, err := svc.Get(context.Background(), " cert-004 ")
	require.NoError(t, err)
	assert.Equal(t, certificate.StatusRevoked, c.Status)

	for _, id := range []string{"", "CERT-999"} {
		_, err = svc.Get(context.Background(), id)
		assert.Equal(t, certificate.ErrNotFound, err, id)
	}
}
