package dto

import (
	"quanlycanho_backend/internals/constants"
	accountModel "quanlycanho_backend/internals/features/users/auth/model"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// PrincipalResponse: thông tin principal trả về sau login / me.
type PrincipalResponse struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	RoleLabel string `json:"roleLabel"`
	TenantID  int    `json:"tenantId,omitempty"`
	RoomID    string `json:"roomId,omitempty"`
}

type LoginResponse struct {
	AccessToken string            `json:"accessToken"`
	User        PrincipalResponse `json:"user"`
}

func ToPrincipalResponse(acc *accountModel.AccountModel) PrincipalResponse {
	return PrincipalResponse{
		ID:        acc.ID,
		Username:  acc.Username,
		Name:      acc.Name,
		Role:      acc.Role,
		RoleLabel: constants.RoleLabel(acc.Role),
		TenantID:  acc.TenantID,
		RoomID:    acc.RoomID,
	}
}
