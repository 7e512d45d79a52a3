package portal_test

import (
	"context"
	"errors"
	"portal/pkg/domain"
	"portal/pkg/extraction"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPortal_Dashboard(t *testing.T) {
	_, st, p := newTestPortal(t)

	st.EXPECT().StatusCounts(gomock.Any()).Return(map[domain.AbstractStatus]int64{
		domain.AbstractStatusPending:  3,
		domain.AbstractStatusApproved: 2,
	}, nil)
	st.EXPECT().EntitiesByStatus(gomock.Any(), domain.AbstractStatusApproved).Return([]domain.ExtractedEntities{
		{Technologies: []string{"IoT", "Python", "Docker"}, Domains: []string{"Agriculture"}},
		{Technologies: []string{"internet of things", "python"}, Methodologies: []string{"survey"}},
	}, nil)

	got, err := p.Dashboard(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 5, got.Total)
	require.EqualValues(t, 3, got.Counts[domain.AbstractStatusPending])
	require.Equal(t, []extraction.TermCount{
		{Term: "Internet of Things", Count: 2},
		{Term: "Python", Count: 2},
	}, got.Technologies)
	require.Equal(t, []extraction.TermCount{{Term: "Agriculture", Count: 1}}, got.Domains)
	require.Equal(t, []extraction.TermCount{{Term: "Survey", Count: 1}}, got.Methodologies)
}

func TestPortal_Dashboard_storageError(t *testing.T) {
	_, st, p := newTestPortal(t)
	boom := errors.New("boom")

	st.EXPECT().StatusCounts(gomock.Any()).Return(nil, boom)

	_, err := p.Dashboard(context.Background())
	require.ErrorIs(t, err, boom)
}
