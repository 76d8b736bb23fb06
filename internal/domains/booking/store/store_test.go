package store_test

import (
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/store"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ReplaceAllAndAll(t *testing.T) {
	s := store.New()

	assert.True(t, s.Empty())

	s.ReplaceAll([]model.Booking{
		{ID: "b1", BookingStatus: model.StatusPending},
		{ID: "b2", BookingStatus: model.StatusConfirmed},
	})

	all := s.All()
	require.Len(t, all, 2)

	assert.Equal(t, "b1", all[0].ID)
	assert.Equal(t, "b2", all[1].ID)
	assert.False(t, s.Empty())
}

func TestStore_UpdateReplacesInPlace(t *testing.T) {
	s := store.New()
	s.ReplaceAll([]model.Booking{
		{ID: "b1", BookingStatus: model.StatusPending},
		{ID: "b2", BookingStatus: model.StatusConfirmed},
	})

	s.Update(model.Booking{ID: "b1", BookingStatus: model.StatusCheckedIn})

	got, ok := s.Get("b1")
	require.True(t, ok)
	assert.Equal(t, model.StatusCheckedIn, got.BookingStatus)

	// The other record is untouched and the order is stable.
	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "b1", all[0].ID)
	assert.Equal(t, model.StatusConfirmed, all[1].BookingStatus)
}

func TestStore_UpdateUnknownIDIsIgnored(t *testing.T) {
	s := store.New()
	s.ReplaceAll([]model.Booking{{ID: "b1"}})

	s.Update(model.Booking{ID: "ghost", BookingStatus: model.StatusCheckedIn})

	_, ok := s.Get("ghost")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestStore_ReplaceAllDropsStaleRecords(t *testing.T) {
	s := store.New()
	s.ReplaceAll([]model.Booking{{ID: "b1"}, {ID: "b2"}})
	s.ReplaceAll([]model.Booking{{ID: "b3"}})

	_, ok := s.Get("b1")
	assert.False(t, ok)

	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, "b3", all[0].ID)
}
