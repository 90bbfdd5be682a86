package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pension-backend/models"
)

func TestListRoomTypesIdempotent(t *testing.T) {
	ts := newTestServices(t)
	createTestRoomType(t, ts.db, "Dvoulůžkový pokoj", 1800, 2)
	createTestRoomType(t, ts.db, "Apartmá", 3500, 4)

	first, err := ts.catalog.ListRoomTypes(0)
	require.NoError(t, err)
	second, err := ts.catalog.ListRoomTypes(0)
	require.NoError(t, err)

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.True(t, first[i].BasePrice.Equal(second[i].BasePrice))
	}
}

func TestDeleteRoomTypeWithRoomsRefused(t *testing.T) {
	ts := newTestServices(t)
	rt := createTestRoomType(t, ts.db, "Dvoulůžkový pokoj", 1800, 2)
	room := createTestRoom(t, ts.db, "101", rt.ID, models.RoomStatusAvailable)

	assert.ErrorIs(t, ts.catalog.DeleteRoomType(rt.ID), ErrInvalidInput)

	require.NoError(t, ts.catalog.DeleteRoom(room.ID))
	require.NoError(t, ts.catalog.DeleteRoomType(rt.ID))

	_, err := ts.catalog.GetRoomType(rt.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateRoomValidation(t *testing.T) {
	ts := newTestServices(t)
	rt := createTestRoomType(t, ts.db, "Dvoulůžkový pokoj", 1800, 2)

	err := ts.catalog.CreateRoom(&models.Room{RoomNumber: "", RoomTypeID: rt.ID})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = ts.catalog.CreateRoom(&models.Room{RoomNumber: "101", RoomTypeID: 999})
	assert.ErrorIs(t, err, ErrNotFound)

	err = ts.catalog.CreateRoom(&models.Room{RoomNumber: "101", RoomTypeID: rt.ID, Status: "nonsense"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, ts.catalog.CreateRoom(&models.Room{RoomNumber: "101", RoomTypeID: rt.ID}))

	// duplicate room number
	err = ts.catalog.CreateRoom(&models.Room{RoomNumber: "101", RoomTypeID: rt.ID})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
