package requests

import "field-ministry/campo/internal/constants"

type UpdateUserReq struct {
	Name     *string             `json:"name" validate:"omitempty,min=1,max=200"`
	Phone    *string             `json:"phone" validate:"omitempty,max=40"`
	Avatar   *string             `json:"avatar" validate:"omitempty,max=2048"`
	Role     *constants.UserRole `json:"role" validate:"omitempty,oneof=ADMIN COORDINATOR LEADER MEMBER"`
	IsActive *bool               `json:"isActive"`
}

func (r *UpdateUserReq) Updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.Name != nil {
		u["name"] = *r.Name
	}
	if r.Phone != nil {
		u["phone"] = *r.Phone
	}
	if r.Avatar != nil {
		u["avatar"] = *r.Avatar
	}
	if r.Role != nil {
		u["role"] = *r.Role
	}
	if r.IsActive != nil {
		u["is_active"] = *r.IsActive
	}
	return u
}

// UpsertUserReq carries the identity claims used to create or refresh a user on login.
type UpsertUserReq struct {
	ID              string
	Email           *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
}
