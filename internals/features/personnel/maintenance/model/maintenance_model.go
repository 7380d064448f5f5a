// internals/features/personnel/maintenance/model/maintenance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Maintenance staff status values
const (
	StaffStatusActif    = "actif"
	StaffStatusInactif  = "inactif"
	StaffStatusSuspendu = "suspendu"
	StaffStatusConge    = "conge"
)

type MaintenanceStaffModel struct {
	MaintenanceID uuid.UUID `gorm:"column:maintenance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"maintenance_id"`

	MaintenanceFirstName string `gorm:"column:maintenance_first_name;type:varchar(100);not null" json:"maintenance_first_name"`
	MaintenanceLastName  string `gorm:"column:maintenance_last_name;type:varchar(100);not null" json:"maintenance_last_name"`
	MaintenanceGender    string `gorm:"column:maintenance_gender;type:varchar(10);not null;check:maintenance_gender IN ('masculin','feminin')" json:"maintenance_gender"`

	MaintenancePhone    string  `gorm:"column:maintenance_phone;type:varchar(30);not null" json:"maintenance_phone"`
	MaintenanceAddress  *string `gorm:"column:maintenance_address;type:text" json:"maintenance_address,omitempty"`
	MaintenanceFunction string  `gorm:"column:maintenance_function;type:varchar(100);not null" json:"maintenance_function"`

	MaintenanceSalary   int64          `gorm:"column:maintenance_salary;not null;default:0;check:maintenance_salary >= 0" json:"maintenance_salary"`
	MaintenanceHireDate datatypes.Date `gorm:"column:maintenance_hire_date;not null" json:"maintenance_hire_date"`

	MaintenanceStatus string `gorm:"column:maintenance_status;type:varchar(10);not null;default:'actif';check:maintenance_status IN ('actif','inactif','suspendu','conge')" json:"maintenance_status"`

	MaintenanceCreatedAt time.Time      `gorm:"column:maintenance_created_at;not null;autoCreateTime" json:"maintenance_created_at"`
	MaintenanceUpdatedAt time.Time      `gorm:"column:maintenance_updated_at;not null;autoUpdateTime" json:"maintenance_updated_at"`
	MaintenanceDeletedAt gorm.DeletedAt `gorm:"column:maintenance_deleted_at;index" json:"maintenance_deleted_at,omitempty"`
}

func (MaintenanceStaffModel) TableName() string { return "maintenance_staff" }
