package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "schooladmin_backend/internals/features/users/user/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateAdminStaffRequest struct {
	UserName string `json:"admin_staff_user_name" validate:"required,min=3,max=60"`
	Email    string `json:"admin_staff_email" validate:"required,email,max=120"`
	Password string `json:"admin_staff_password" validate:"required,min=8,max=72"`
	Role     string `json:"admin_staff_role" validate:"required,oneof=admin super_admin"`
}

func (r *CreateAdminStaffRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateAdminStaffRequest struct {
	UserName *string `json:"admin_staff_user_name" validate:"omitempty,min=3,max=60"`
	Email    *string `json:"admin_staff_email" validate:"omitempty,email,max=120"`
	Role     *string `json:"admin_staff_role" validate:"omitempty,oneof=admin super_admin"`
	IsActive *bool   `json:"admin_staff_is_active"`
}

func (r UpdateAdminStaffRequest) Apply(mm *m.AdminStaffModel) {
	if r.UserName != nil {
		mm.AdminStaffUserName = strings.TrimSpace(*r.UserName)
	}
	if r.Email != nil {
		mm.AdminStaffEmail = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.Role != nil {
		mm.AdminStaffRole = strings.ToLower(strings.TrimSpace(*r.Role))
	}
	if r.IsActive != nil {
		mm.AdminStaffIsActive = *r.IsActive
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type AdminStaffResponse struct {
	AdminStaffID uuid.UUID `json:"admin_staff_id"`
	UserName     string    `json:"admin_staff_user_name"`
	Email        string    `json:"admin_staff_email"`
	Role         string    `json:"admin_staff_role"`
	IsActive     bool      `json:"admin_staff_is_active"`
	CreatedAt    time.Time `json:"admin_staff_created_at"`
	UpdatedAt    time.Time `json:"admin_staff_updated_at"`
}

func FromAdminStaffModel(mm m.AdminStaffModel) AdminStaffResponse {
	return AdminStaffResponse{
		AdminStaffID: mm.AdminStaffID,
		UserName:     mm.AdminStaffUserName,
		Email:        mm.AdminStaffEmail,
		Role:         mm.AdminStaffRole,
		IsActive:     mm.AdminStaffIsActive,
		CreatedAt:    mm.AdminStaffCreatedAt,
		UpdatedAt:    mm.AdminStaffUpdatedAt,
	}
}

func FromAdminStaffModels(ms []m.AdminStaffModel) []AdminStaffResponse {
	out := make([]AdminStaffResponse, 0, len(ms))
	for _, mm := range ms {
		out = append(out, FromAdminStaffModel(mm))
	}
	return out
}
