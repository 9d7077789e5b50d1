package repository

import (
	"errors"

	contractModel "quanlycanho_backend/internals/features/property/contracts/model"
	"quanlycanho_backend/internals/seeds"
)

var ErrContractNotFound = errors.New("contract not found")

// ContractRepository giữ bản sao làm việc của danh sách hợp đồng.
type ContractRepository struct {
	contracts []contractModel.ContractModel
}

func NewContractRepository(store *seeds.Store) *ContractRepository {
	return &ContractRepository{contracts: store.Contracts()}
}

func (r *ContractRepository) List() []contractModel.ContractModel {
	return r.contracts
}

func (r *ContractRepository) FindByID(id int) (*contractModel.ContractModel, error) {
	for i := range r.contracts {
		if r.contracts[i].ID == id {
			return &r.contracts[i], nil
		}
	}
	return nil, ErrContractNotFound
}

// FindByTenantID trả về hợp đồng đầu tiên của khách thuê (nếu có).
func (r *ContractRepository) FindByTenantID(tenantID int) (*contractModel.ContractModel, error) {
	for i := range r.contracts {
		if r.contracts[i].TenantID == tenantID {
			return &r.contracts[i], nil
		}
	}
	return nil, ErrContractNotFound
}

// nextID = max(id hiện có) + 1, danh sách rỗng → 1.
func (r *ContractRepository) nextID() int {
	maxID := 0
	for i := range r.contracts {
		if r.contracts[i].ID > maxID {
			maxID = r.contracts[i].ID
		}
	}
	return maxID + 1
}

func (r *ContractRepository) Create(m contractModel.ContractModel) contractModel.ContractModel {
	m.ID = r.nextID()
	r.contracts = append(r.contracts, m)
	return m
}

func (r *ContractRepository) Update(id int, m contractModel.ContractModel) (*contractModel.ContractModel, error) {
	for i := range r.contracts {
		if r.contracts[i].ID == id {
			m.ID = id
			r.contracts[i] = m
			return &r.contracts[i], nil
		}
	}
	return nil, ErrContractNotFound
}

func (r *ContractRepository) Delete(id int) error {
	for i := range r.contracts {
		if r.contracts[i].ID == id {
			r.contracts = append(r.contracts[:i], r.contracts[i+1:]...)
			return nil
		}
	}
	return ErrContractNotFound
}
