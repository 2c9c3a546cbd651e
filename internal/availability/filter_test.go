package availability

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/padelhq/padel-reservation/internal/model"
)

func builtFixture(t *testing.T) []CourtWithSlots {
	t.Helper()
	courts := []model.Court{
		court60(1, "Center"),  // DOUBLE / INDOOR
		court90(2, "Terrace"), // SINGLE / OUTDOOR
		court60(3, "Annex"),   // DOUBLE / INDOOR
	}
	// Block the whole business day on court 3 so it has no available slot.
	three := uint64(3)
	blocked := []model.BlockedSlot{{CourtID: &three, StartAt: at(9, 0), EndAt: at(22, 0)}}

	out, err := BuildCourtsWithSlots(courts, nil, blocked, testDay, at(8, 0), AnonymousViewer, testHours)
	require.NoError(t, err)
	return out
}

func TestFilterNoOptionsKeepsEverything(t *testing.T) {
	in := builtFixture(t)
	out := Filter(in, FilterOptions{})
	require.Equal(t, in, out)
}

func TestFilterByType(t *testing.T) {
	out := Filter(builtFixture(t), FilterOptions{Type: model.CourtTypeSingle})
	require.Len(t, out, 1)
	require.Equal(t, uint64(2), out[0].Court.ID)
}

func TestFilterByLocation(t *testing.T) {
	out := Filter(builtFixture(t), FilterOptions{Location: model.CourtLocationIndoor})
	require.Len(t, out, 2)
	// Input order is preserved.
	require.Equal(t, uint64(1), out[0].Court.ID)
	require.Equal(t, uint64(3), out[1].Court.ID)
}

func TestFilterOnlyAvailableDropsFullyBlockedCourt(t *testing.T) {
	out := Filter(builtFixture(t), FilterOptions{OnlyAvailable: true})
	require.Len(t, out, 2)
	for _, cs := range out {
		require.NotEqual(t, uint64(3), cs.Court.ID)
	}
}

func TestFilterCombined(t *testing.T) {
	out := Filter(builtFixture(t), FilterOptions{Type: model.CourtTypeDouble, OnlyAvailable: true})
	require.Len(t, out, 1)
	require.Equal(t, uint64(1), out[0].Court.ID)
}

func TestFilterKeepsSlotSequencesIntact(t *testing.T) {
	in := builtFixture(t)
	out := Filter(in, FilterOptions{Location: model.CourtLocationOutdoor})
	require.Len(t, out, 1)
	require.Equal(t, in[1].Slots, out[0].Slots)
}
