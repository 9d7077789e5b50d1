package repository

import (
	"errors"

	tenantModel "quanlycanho_backend/internals/features/property/tenants/model"
	"quanlycanho_backend/internals/seeds"
)

var ErrTenantNotFound = errors.New("tenant not found")

// TenantRepository giữ working copy của collection khách thuê.
type TenantRepository struct {
	tenants []tenantModel.TenantModel
}

func NewTenantRepository(store *seeds.Store) *TenantRepository {
	return &TenantRepository{tenants: store.Tenants()}
}

func (r *TenantRepository) List() []tenantModel.TenantModel {
	out := make([]tenantModel.TenantModel, len(r.tenants))
	copy(out, r.tenants)
	return out
}

func (r *TenantRepository) FindByID(id int) (*tenantModel.TenantModel, error) {
	for i := range r.tenants {
		if r.tenants[i].ID == id {
			t := r.tenants[i]
			return &t, nil
		}
	}
	return nil, ErrTenantNotFound
}

// nextID = max(id hiện có) + 1; collection rỗng thì bắt đầu từ 1.
// Id đã xóa không được tái sử dụng.
func (r *TenantRepository) nextID() int {
	max := 0
	for i := range r.tenants {
		if r.tenants[i].ID > max {
			max = r.tenants[i].ID
		}
	}
	return max + 1
}

func (r *TenantRepository) Create(m tenantModel.TenantModel) *tenantModel.TenantModel {
	m.ID = r.nextID()
	r.tenants = append(r.tenants, m)
	return &m
}

func (r *TenantRepository) Update(id int, m tenantModel.TenantModel) (*tenantModel.TenantModel, error) {
	for i := range r.tenants {
		if r.tenants[i].ID == id {
			m.ID = id
			r.tenants[i] = m
			return &m, nil
		}
	}
	return nil, ErrTenantNotFound
}

func (r *TenantRepository) Delete(id int) error {
	for i := range r.tenants {
		if r.tenants[i].ID == id {
			r.tenants = append(r.tenants[:i], r.tenants[i+1:]...)
			return nil
		}
	}
	return ErrTenantNotFound
}

func (r *TenantRepository) Count() int {
	return len(r.tenants)
}
