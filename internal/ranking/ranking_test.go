package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashforcars/CFC-AppointmentService/internal/domain"
	"github.com/cashforcars/CFC-AppointmentService/pkg/ptr"
)

func TestRank_HomeFirstThenDistance(t *testing.T) {
	locations := []domain.Location{
		{ID: 1, Name: "Union", Kind: domain.KindBranch, DistanceMiles: ptr.Ptr(12.4)},
		{ID: 2, Name: "Newark", Kind: domain.KindBranch, DistanceMiles: ptr.Ptr(3.1)},
		{ID: 3, Name: "Mobile Unit", Kind: domain.KindHome, DistanceMiles: ptr.Ptr(50.0)},
		{ID: 4, Name: "Paterson", Kind: domain.KindBranch},
		{ID: 5, Name: "Edison", Kind: domain.KindBranch, DistanceMiles: ptr.Ptr(7.8)},
	}

	ranked := Rank(locations)
	require.Len(t, ranked, 5)

	// Home pins first despite the largest distance
	assert.Equal(t, int64(3), ranked[0].ID)
	// Branches ascend by distance; missing distance sorts last
	assert.Equal(t, int64(2), ranked[1].ID)
	assert.Equal(t, int64(5), ranked[2].ID)
	assert.Equal(t, int64(1), ranked[3].ID)
	assert.Equal(t, int64(4), ranked[4].ID)
}

func TestRank_StableForEqualDistances(t *testing.T) {
	locations := []domain.Location{
		{ID: 10, Kind: domain.KindBranch, DistanceMiles: ptr.Ptr(5.0)},
		{ID: 11, Kind: domain.KindBranch, DistanceMiles: ptr.Ptr(5.0)},
		{ID: 12, Kind: domain.KindBranch},
		{ID: 13, Kind: domain.KindBranch},
	}

	ranked := Rank(locations)
	assert.Equal(t, int64(10), ranked[0].ID)
	assert.Equal(t, int64(11), ranked[1].ID)
	assert.Equal(t, int64(12), ranked[2].ID)
	assert.Equal(t, int64(13), ranked[3].ID)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	locations := []domain.Location{
		{ID: 1, Kind: domain.KindBranch, DistanceMiles: ptr.Ptr(9.0)},
		{ID: 2, Kind: domain.KindHome},
	}

	Rank(locations)
	assert.Equal(t, int64(1), locations[0].ID)
}

func TestFilterByKind(t *testing.T) {
	locations := []domain.Location{
		{ID: 1, Kind: domain.KindBranch},
		{ID: 2, Kind: domain.KindHome},
		{ID: 3, Kind: domain.KindBranch},
	}

	branches := FilterByKind(locations, domain.KindBranch)
	require.Len(t, branches, 2)
	assert.Equal(t, int64(1), branches[0].ID)
	assert.Equal(t, int64(3), branches[1].ID)

	home := FilterByKind(locations, domain.KindHome)
	require.Len(t, home, 1)
	assert.Equal(t, int64(2), home[0].ID)
}

func TestFindHome(t *testing.T) {
	_, ok := FindHome([]domain.Location{{ID: 1, Kind: domain.KindBranch}})
	assert.False(t, ok)

	loc, ok := FindHome([]domain.Location{
		{ID: 1, Kind: domain.KindBranch},
		{ID: 2, Kind: domain.KindHome},
	})
	require.True(t, ok)
	assert.Equal(t, int64(2), loc.ID)
}
