package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pension-backend/models"
)

func TestFindAvailableRoomTypesOverlapBoundaries(t *testing.T) {
	ts := newTestServices(t)
	rt := createTestRoomType(t, ts.db, "Dvoulůžkový pokoj", 1800, 2)
	room := createTestRoom(t, ts.db, "101", rt.ID, models.RoomStatusAvailable)

	// existing confirmed stay occupying nights d+10 .. d+12
	createTestReservation(t, ts.db, room.ID, daysFromNow(10), daysFromNow(13), models.ReservationStatusConfirmed)

	// overlapping request: the night of d+12 collides
	entries, err := ts.availability.FindAvailableRoomTypes(daysFromNow(12), daysFromNow(15), 2, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// back-to-back: check-in on the existing checkout day is free
	entries, err = ts.availability.FindAvailableRoomTypes(daysFromNow(13), daysFromNow(15), 2, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].AvailableRooms)

	// fully before the existing stay
	entries, err = ts.availability.FindAvailableRoomTypes(daysFromNow(8), daysFromNow(10), 2, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestFindAvailableRoomTypesCapacityFilter(t *testing.T) {
	ts := newTestServices(t)
	small := createTestRoomType(t, ts.db, "Dvoulůžkový pokoj", 1800, 2)
	big := createTestRoomType(t, ts.db, "Apartmá", 3500, 5)
	createTestRoom(t, ts.db, "101", small.ID, models.RoomStatusAvailable)
	createTestRoom(t, ts.db, "201", big.ID, models.RoomStatusAvailable)

	entries, err := ts.availability.FindAvailableRoomTypes(daysFromNow(5), daysFromNow(8), 3, 2)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, big.ID, entries[0].RoomType.ID)
}

func TestFindAvailableRoomTypesExcludesMaintenanceRooms(t *testing.T) {
	ts := newTestServices(t)
	rt := createTestRoomType(t, ts.db, "Dvoulůžkový pokoj", 1800, 2)
	createTestRoom(t, ts.db, "101", rt.ID, models.RoomStatusCleaning)
	createTestRoom(t, ts.db, "102", rt.ID, models.RoomStatusOutOfOrder)
	createTestRoom(t, ts.db, "103", rt.ID, models.RoomStatusAvailable)

	entries, err := ts.availability.FindAvailableRoomTypes(daysFromNow(5), daysFromNow(8), 2, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].AvailableRooms)
	// maintenance rooms still count toward the type's total
	assert.Equal(t, 3, entries[0].TotalRooms)
}

func TestFindAvailableRoomTypesZeroRoomsIsNotAnError(t *testing.T) {
	ts := newTestServices(t)
	createTestRoomType(t, ts.db, "Apartmá", 3500, 4)

	entries, err := ts.availability.FindAvailableRoomTypes(daysFromNow(5), daysFromNow(8), 2, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFindAvailableRoomTypesIgnoresCancelledReservations(t *testing.T) {
	ts := newTestServices(t)
	rt := createTestRoomType(t, ts.db, "Dvoulůžkový pokoj", 1800, 2)
	room := createTestRoom(t, ts.db, "101", rt.ID, models.RoomStatusAvailable)
	createTestReservation(t, ts.db, room.ID, daysFromNow(10), daysFromNow(13), models.ReservationStatusCancelled)

	entries, err := ts.availability.FindAvailableRoomTypes(daysFromNow(10), daysFromNow(13), 2, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].AvailableRooms)
}

func TestFindAvailableRoomTypesSortedByPrice(t *testing.T) {
	ts := newTestServices(t)
	expensive := createTestRoomType(t, ts.db, "Apartmá", 3500, 4)
	cheap := createTestRoomType(t, ts.db, "Dvoulůžkový pokoj", 1800, 2)
	createTestRoom(t, ts.db, "201", expensive.ID, models.RoomStatusAvailable)
	createTestRoom(t, ts.db, "101", cheap.ID, models.RoomStatusAvailable)

	entries, err := ts.availability.FindAvailableRoomTypes(daysFromNow(5), daysFromNow(8), 2, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, cheap.ID, entries[0].RoomType.ID)
}

func TestFindAvailableRoomTypesRejectsBadInput(t *testing.T) {
	ts := newTestServices(t)

	_, err := ts.availability.FindAvailableRoomTypes(daysFromNow(8), daysFromNow(5), 2, 0)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = ts.availability.FindAvailableRoomTypes(daysFromNow(5), daysFromNow(5), 2, 0)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = ts.availability.FindAvailableRoomTypes(daysFromNow(-2), daysFromNow(2), 2, 0)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = ts.availability.FindAvailableRoomTypes(daysFromNow(5), daysFromNow(8), 0, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFindAvailableRoomTypesStorageFailure(t *testing.T) {
	ts := newTestServices(t)
	createTestRoomType(t, ts.db, "Dvoulůžkový pokoj", 1800, 2)

	sqlDB, err := ts.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	// a dead backend aborts the whole call, never partial results
	entries, err := ts.availability.FindAvailableRoomTypes(daysFromNow(5), daysFromNow(8), 2, 0)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.Nil(t, entries)
}

func TestFreeRoomsOfTypeOrderedByRoomNumber(t *testing.T) {
	ts := newTestServices(t)
	rt := createTestRoomType(t, ts.db, "Dvoulůžkový pokoj", 1800, 2)
	createTestRoom(t, ts.db, "202", rt.ID, models.RoomStatusAvailable)
	createTestRoom(t, ts.db, "101", rt.ID, models.RoomStatusAvailable)

	free, err := ts.availability.FreeRoomsOfType(rt.ID, daysFromNow(5), daysFromNow(8))
	require.NoError(t, err)
	require.Len(t, free, 2)
	assert.Equal(t, "101", free[0].RoomNumber)
	assert.Equal(t, "202", free[1].RoomNumber)
}
