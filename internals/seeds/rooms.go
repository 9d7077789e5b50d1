package seeds

import (
	roomModel "quanlycanho_backend/internals/features/property/rooms/model"
)

// Dữ liệu phòng cố định
var rooms = []roomModel.RoomModel{
	{ID: "102", Area: 26, Price: 4200000, Floor: 1, Status: roomModel.RoomStatusAvailable},
	{ID: "201", Area: 25, Price: 5200000, Floor: 2, Status: roomModel.RoomStatusOccupied},
	{ID: "202", Area: 20, Price: 4200000, Floor: 2, Status: roomModel.RoomStatusAvailable},
	{ID: "301", Area: 25, Price: 5200000, Floor: 3, Status: roomModel.RoomStatusOccupied},
	{ID: "302", Area: 20, Price: 4200000, Floor: 3, Status: roomModel.RoomStatusAvailable},
	{ID: "401", Area: 25, Price: 5200000, Floor: 4, Status: roomModel.RoomStatusAvailable},
	{ID: "402", Area: 20, Price: 4200000, Floor: 4, Status: roomModel.RoomStatusOccupied},
	{ID: "501", Area: 25, Price: 5200000, Floor: 5, Status: roomModel.RoomStatusAvailable},
	{ID: "502", Area: 20, Price: 4200000, Floor: 5, Status: roomModel.RoomStatusAvailable},
	{ID: "601", Area: 25, Price: 5200000, Floor: 6, Status: roomModel.RoomStatusOccupied},
	{ID: "602", Area: 20, Price: 4400000, Floor: 6, Status: roomModel.RoomStatusAvailable},
}
