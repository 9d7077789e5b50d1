package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	roomModel "quanlycanho_backend/internals/features/property/rooms/model"
	tenantModel "quanlycanho_backend/internals/features/property/tenants/model"
)

var (
	testTenants = []tenantModel.TenantModel{
		{ID: 1, Name: "Nguyễn Văn An", RoomID: "201"},
	}
	testRooms = []roomModel.RoomModel{
		{ID: "201", Area: 25, Price: 5200000, Floor: 2, Status: roomModel.RoomStatusOccupied},
	}
)

func TestTenantName(t *testing.T) {
	assert.Equal(t, "Nguyễn Văn An", TenantName(testTenants, 1))
	// tham chiếu hỏng không được làm vỡ response
	assert.Equal(t, MissingRefLabel, TenantName(testTenants, 99))
	assert.Equal(t, MissingRefLabel, TenantName(nil, 1))
}

func TestRoomLabel(t *testing.T) {
	assert.Equal(t, "201 (25m²)", RoomLabel(testRooms, "201"))
	assert.Equal(t, MissingRefLabel, RoomLabel(testRooms, "999"))
}

func TestFindRoom(t *testing.T) {
	room := FindRoom(testRooms, "201")
	assert.NotNil(t, room)
	assert.Equal(t, 25, room.Area)

	assert.Nil(t, FindRoom(testRooms, "999"))
}
