package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "schooladmin_backend/internals/features/personnel/maintenance/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateMaintenanceStaffRequest struct {
	FirstName string  `json:"maintenance_first_name" validate:"required,min=1,max=100"`
	LastName  string  `json:"maintenance_last_name" validate:"required,min=1,max=100"`
	Gender    string  `json:"maintenance_gender" validate:"required,oneof=masculin feminin"`
	Phone     string  `json:"maintenance_phone" validate:"required,min=6,max=30"`
	Address   *string `json:"maintenance_address"`
	Function  string  `json:"maintenance_function" validate:"required,min=2,max=100"`
	Salary    int64   `json:"maintenance_salary" validate:"min=0"`
	HireDate  string  `json:"maintenance_hire_date" validate:"required,datetime=2006-01-02"`
}

func (r *CreateMaintenanceStaffRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Gender = strings.ToLower(strings.TrimSpace(r.Gender))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Function = strings.TrimSpace(r.Function)
	r.HireDate = strings.TrimSpace(r.HireDate)
	if r.Address != nil {
		v := strings.TrimSpace(*r.Address)
		if v == "" {
			r.Address = nil
		} else {
			r.Address = &v
		}
	}
}

func (r CreateMaintenanceStaffRequest) ToModel() m.MaintenanceStaffModel {
	now := time.Now()
	hired, _ := time.Parse("2006-01-02", r.HireDate)
	return m.MaintenanceStaffModel{
		MaintenanceFirstName: r.FirstName,
		MaintenanceLastName:  r.LastName,
		MaintenanceGender:    r.Gender,
		MaintenancePhone:     r.Phone,
		MaintenanceAddress:   r.Address,
		MaintenanceFunction:  r.Function,
		MaintenanceSalary:    r.Salary,
		MaintenanceHireDate:  datatypes.Date(hired),
		MaintenanceStatus:    m.StaffStatusActif,
		MaintenanceCreatedAt: now,
		MaintenanceUpdatedAt: now,
	}
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateMaintenanceStaffRequest struct {
	FirstName *string `json:"maintenance_first_name" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"maintenance_last_name" validate:"omitempty,min=1,max=100"`
	Gender    *string `json:"maintenance_gender" validate:"omitempty,oneof=masculin feminin"`
	Phone     *string `json:"maintenance_phone" validate:"omitempty,min=6,max=30"`
	Address   *string `json:"maintenance_address"`
	Function  *string `json:"maintenance_function" validate:"omitempty,min=2,max=100"`
	Salary    *int64  `json:"maintenance_salary" validate:"omitempty,min=0"`
	HireDate  *string `json:"maintenance_hire_date" validate:"omitempty,datetime=2006-01-02"`
	Status    *string `json:"maintenance_status" validate:"omitempty,oneof=actif inactif suspendu conge"`
}

func (r UpdateMaintenanceStaffRequest) Apply(mm *m.MaintenanceStaffModel) {
	if r.FirstName != nil {
		mm.MaintenanceFirstName = strings.TrimSpace(*r.FirstName)
	}
	if r.LastName != nil {
		mm.MaintenanceLastName = strings.TrimSpace(*r.LastName)
	}
	if r.Gender != nil {
		mm.MaintenanceGender = strings.ToLower(strings.TrimSpace(*r.Gender))
	}
	if r.Phone != nil {
		mm.MaintenancePhone = strings.TrimSpace(*r.Phone)
	}
	if r.Address != nil {
		v := strings.TrimSpace(*r.Address)
		if v == "" {
			mm.MaintenanceAddress = nil
		} else {
			mm.MaintenanceAddress = &v
		}
	}
	if r.Function != nil {
		mm.MaintenanceFunction = strings.TrimSpace(*r.Function)
	}
	if r.Salary != nil {
		mm.MaintenanceSalary = *r.Salary
	}
	if r.HireDate != nil {
		if t, err := time.Parse("2006-01-02", strings.TrimSpace(*r.HireDate)); err == nil {
			mm.MaintenanceHireDate = datatypes.Date(t)
		}
	}
	if r.Status != nil {
		mm.MaintenanceStatus = strings.ToLower(strings.TrimSpace(*r.Status))
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type MaintenanceStaffResponse struct {
	MaintenanceID uuid.UUID      `json:"maintenance_id"`
	FirstName     string         `json:"maintenance_first_name"`
	LastName      string         `json:"maintenance_last_name"`
	Gender        string         `json:"maintenance_gender"`
	Phone         string         `json:"maintenance_phone"`
	Address       *string        `json:"maintenance_address,omitempty"`
	Function      string         `json:"maintenance_function"`
	Salary        int64          `json:"maintenance_salary"`
	HireDate      datatypes.Date `json:"maintenance_hire_date"`
	Status        string         `json:"maintenance_status"`
	CreatedAt     time.Time      `json:"maintenance_created_at"`
	UpdatedAt     time.Time      `json:"maintenance_updated_at"`
}

func FromMaintenanceStaffModel(mm m.MaintenanceStaffModel) MaintenanceStaffResponse {
	return MaintenanceStaffResponse{
		MaintenanceID: mm.MaintenanceID,
		FirstName:     mm.MaintenanceFirstName,
		LastName:      mm.MaintenanceLastName,
		Gender:        mm.MaintenanceGender,
		Phone:         mm.MaintenancePhone,
		Address:       mm.MaintenanceAddress,
		Function:      mm.MaintenanceFunction,
		Salary:        mm.MaintenanceSalary,
		HireDate:      mm.MaintenanceHireDate,
		Status:        mm.MaintenanceStatus,
		CreatedAt:     mm.MaintenanceCreatedAt,
		UpdatedAt:     mm.MaintenanceUpdatedAt,
	}
}

func FromMaintenanceStaffModels(ms []m.MaintenanceStaffModel) []MaintenanceStaffResponse {
	out := make([]MaintenanceStaffResponse, 0, len(ms))
	for _, mm := range ms {
		out = append(out, FromMaintenanceStaffModel(mm))
	}
	return out
}
