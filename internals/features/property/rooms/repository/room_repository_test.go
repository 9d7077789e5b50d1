package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	roomModel "quanlycanho_backend/internals/features/property/rooms/model"
	"quanlycanho_backend/internals/seeds"
)

func newRepo() *RoomRepository {
	return NewRoomRepository(seeds.NewStore())
}

func TestCreateRejectsDuplicateID(t *testing.T) {
	repo := newRepo()

	_, err := repo.Create(roomModel.RoomModel{ID: "201", Area: 30, Price: 6000000, Floor: 2})
	assert.ErrorIs(t, err, ErrRoomIDTaken)

	created, err := repo.Create(roomModel.RoomModel{ID: "701", Area: 30, Price: 6000000, Floor: 7, Status: roomModel.RoomStatusAvailable})
	require.NoError(t, err)
	assert.Equal(t, "701", created.ID)

	total, _ := repo.Count()
	assert.Equal(t, 12, total)
}

func TestCount(t *testing.T) {
	repo := newRepo()

	total, occupied := repo.Count()
	assert.Equal(t, 11, total)
	assert.Equal(t, 4, occupied)
}

func TestUpdateKeepsID(t *testing.T) {
	repo := newRepo()

	updated, err := repo.Update("102", roomModel.RoomModel{ID: "bị bỏ qua", Area: 28, Price: 4300000, Floor: 1, Status: roomModel.RoomStatusMaintenance})
	require.NoError(t, err)
	assert.Equal(t, "102", updated.ID)
	assert.Equal(t, roomModel.RoomStatusMaintenance, updated.Status)
}

func TestDelete(t *testing.T) {
	repo := newRepo()

	require.NoError(t, repo.Delete("102"))
	_, err := repo.FindByID("102")
	assert.ErrorIs(t, err, ErrRoomNotFound)

	assert.ErrorIs(t, repo.Delete("102"), ErrRoomNotFound)
}
