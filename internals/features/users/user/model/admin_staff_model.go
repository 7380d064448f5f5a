// internals/features/users/user/model/admin_staff_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NOTE:
// - admin_staff_password holds a bcrypt hash, never the plain value
// - admin_staff_google_id links an account to Google sign-in; NULL for
//   password-only accounts
type AdminStaffModel struct {
	AdminStaffID uuid.UUID `gorm:"column:admin_staff_id;type:uuid;default:gen_random_uuid();primaryKey" json:"admin_staff_id"`

	AdminStaffUserName string `gorm:"column:admin_staff_user_name;type:varchar(60);not null" json:"admin_staff_user_name"`
	AdminStaffEmail    string `gorm:"column:admin_staff_email;type:varchar(120);not null;uniqueIndex:uq_admin_staff_email" json:"admin_staff_email"`
	AdminStaffPassword string `gorm:"column:admin_staff_password;type:varchar(100);not null" json:"-"`

	AdminStaffRole     string  `gorm:"column:admin_staff_role;type:varchar(15);not null;default:'admin';check:admin_staff_role IN ('admin','super_admin')" json:"admin_staff_role"`
	AdminStaffGoogleID *string `gorm:"column:admin_staff_google_id;type:varchar(60);index" json:"admin_staff_google_id,omitempty"`

	AdminStaffIsActive bool `gorm:"column:admin_staff_is_active;not null;default:true" json:"admin_staff_is_active"`

	AdminStaffCreatedAt time.Time      `gorm:"column:admin_staff_created_at;not null;autoCreateTime" json:"admin_staff_created_at"`
	AdminStaffUpdatedAt time.Time      `gorm:"column:admin_staff_updated_at;not null;autoUpdateTime" json:"admin_staff_updated_at"`
	AdminStaffDeletedAt gorm.DeletedAt `gorm:"column:admin_staff_deleted_at;index" json:"admin_staff_deleted_at,omitempty"`
}

func (AdminStaffModel) TableName() string { return "admin_staff" }
