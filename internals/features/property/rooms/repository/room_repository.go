package repository

import (
	"errors"

	roomModel "quanlycanho_backend/internals/features/property/rooms/model"
	"quanlycanho_backend/internals/seeds"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomIDTaken  = errors.New("room id already exists")
)

// RoomRepository giữ working copy của collection phòng. Clone một lần lúc
// khởi tạo; mọi mutation chỉ sống trong repository này.
type RoomRepository struct {
	rooms []roomModel.RoomModel
}

func NewRoomRepository(store *seeds.Store) *RoomRepository {
	return &RoomRepository{rooms: store.Rooms()}
}

// List trả về toàn bộ phòng theo thứ tự chèn (không sort).
func (r *RoomRepository) List() []roomModel.RoomModel {
	out := make([]roomModel.RoomModel, len(r.rooms))
	copy(out, r.rooms)
	return out
}

func (r *RoomRepository) FindByID(id string) (*roomModel.RoomModel, error) {
	for i := range r.rooms {
		if r.rooms[i].ID == id {
			room := r.rooms[i]
			return &room, nil
		}
	}
	return nil, ErrRoomNotFound
}

// Create thêm phòng mới; id phòng do người quản lý đặt nên phải duy nhất.
func (r *RoomRepository) Create(m roomModel.RoomModel) (*roomModel.RoomModel, error) {
	for i := range r.rooms {
		if r.rooms[i].ID == m.ID {
			return nil, ErrRoomIDTaken
		}
	}
	r.rooms = append(r.rooms, m)
	return &m, nil
}

// Update thay thế nguyên bản ghi có id tương ứng.
func (r *RoomRepository) Update(id string, m roomModel.RoomModel) (*roomModel.RoomModel, error) {
	for i := range r.rooms {
		if r.rooms[i].ID == id {
			m.ID = id
			r.rooms[i] = m
			return &m, nil
		}
	}
	return nil, ErrRoomNotFound
}

// Delete xóa phòng khỏi working copy. Bước xác nhận nằm ở controller.
func (r *RoomRepository) Delete(id string) error {
	for i := range r.rooms {
		if r.rooms[i].ID == id {
			r.rooms = append(r.rooms[:i], r.rooms[i+1:]...)
			return nil
		}
	}
	return ErrRoomNotFound
}

// Count trả về tổng số phòng và số phòng đang thuê (cho dashboard).
func (r *RoomRepository) Count() (total, occupied int) {
	total = len(r.rooms)
	for i := range r.rooms {
		if r.rooms[i].Status == roomModel.RoomStatusOccupied {
			occupied++
		}
	}
	return total, occupied
}
