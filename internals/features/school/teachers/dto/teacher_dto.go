package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "schooladmin_backend/internals/features/school/teachers/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateTeacherRequest struct {
	FirstName string  `json:"teacher_first_name" validate:"required,min=1,max=100"`
	LastName  string  `json:"teacher_last_name" validate:"required,min=1,max=100"`
	Gender    string  `json:"teacher_gender" validate:"required,oneof=masculin feminin"`
	Email     string  `json:"teacher_email" validate:"required,email,max=120"`
	Phone     string  `json:"teacher_phone" validate:"required,min=6,max=30"`
	Address   *string `json:"teacher_address"`
	Diploma   *string `json:"teacher_diploma" validate:"omitempty,max=150"`
	HireDate  string  `json:"teacher_hire_date" validate:"required,datetime=2006-01-02"`
	Status    *string `json:"teacher_status" validate:"omitempty,oneof=actif inactif suspendu conge"`
}

func (r *CreateTeacherRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Gender = strings.ToLower(strings.TrimSpace(r.Gender))
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.HireDate = strings.TrimSpace(r.HireDate)
	if r.Address != nil {
		v := strings.TrimSpace(*r.Address)
		if v == "" {
			r.Address = nil
		} else {
			r.Address = &v
		}
	}
	if r.Diploma != nil {
		v := strings.TrimSpace(*r.Diploma)
		if v == "" {
			r.Diploma = nil
		} else {
			r.Diploma = &v
		}
	}
	if r.Status != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Status))
		if v == "" {
			r.Status = nil
		} else {
			r.Status = &v
		}
	}
}

func (r CreateTeacherRequest) ToModel() m.TeacherModel {
	now := time.Now()
	hired, _ := time.Parse("2006-01-02", r.HireDate)
	mm := m.TeacherModel{
		TeacherFirstName: r.FirstName,
		TeacherLastName:  r.LastName,
		TeacherGender:    r.Gender,
		TeacherEmail:     r.Email,
		TeacherPhone:     r.Phone,
		TeacherAddress:   r.Address,
		TeacherDiploma:   r.Diploma,
		TeacherHireDate:  datatypes.Date(hired),
		TeacherStatus:    m.TeacherStatusActif,
		TeacherCreatedAt: now,
		TeacherUpdatedAt: now,
	}
	if r.Status != nil {
		mm.TeacherStatus = *r.Status
	}
	return mm
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateTeacherRequest struct {
	FirstName *string `json:"teacher_first_name" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"teacher_last_name" validate:"omitempty,min=1,max=100"`
	Gender    *string `json:"teacher_gender" validate:"omitempty,oneof=masculin feminin"`
	Email     *string `json:"teacher_email" validate:"omitempty,email,max=120"`
	Phone     *string `json:"teacher_phone" validate:"omitempty,min=6,max=30"`
	Address   *string `json:"teacher_address"`
	Diploma   *string `json:"teacher_diploma" validate:"omitempty,max=150"`
	HireDate  *string `json:"teacher_hire_date" validate:"omitempty,datetime=2006-01-02"`
	Status    *string `json:"teacher_status" validate:"omitempty,oneof=actif inactif suspendu conge"`
}

func (r UpdateTeacherRequest) Apply(mm *m.TeacherModel) {
	if r.FirstName != nil {
		mm.TeacherFirstName = strings.TrimSpace(*r.FirstName)
	}
	if r.LastName != nil {
		mm.TeacherLastName = strings.TrimSpace(*r.LastName)
	}
	if r.Gender != nil {
		mm.TeacherGender = strings.ToLower(strings.TrimSpace(*r.Gender))
	}
	if r.Email != nil {
		mm.TeacherEmail = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.Phone != nil {
		mm.TeacherPhone = strings.TrimSpace(*r.Phone)
	}
	if r.Address != nil {
		v := strings.TrimSpace(*r.Address)
		if v == "" {
			mm.TeacherAddress = nil
		} else {
			mm.TeacherAddress = &v
		}
	}
	if r.Diploma != nil {
		v := strings.TrimSpace(*r.Diploma)
		if v == "" {
			mm.TeacherDiploma = nil
		} else {
			mm.TeacherDiploma = &v
		}
	}
	if r.HireDate != nil {
		if t, err := time.Parse("2006-01-02", strings.TrimSpace(*r.HireDate)); err == nil {
			mm.TeacherHireDate = datatypes.Date(t)
		}
	}
	if r.Status != nil {
		mm.TeacherStatus = strings.ToLower(strings.TrimSpace(*r.Status))
	}
}

/* =========================================================
   ASSIGNMENTS
   ========================================================= */

type CreateAssignmentRequest struct {
	SubjectID  uuid.UUID `json:"assignment_subject_id" validate:"required"`
	ClassID    uuid.UUID `json:"assignment_class_id" validate:"required"`
	SchoolYear string    `json:"assignment_school_year" validate:"required,len=9"`
}

func (r *CreateAssignmentRequest) Normalize() {
	r.SchoolYear = strings.TrimSpace(r.SchoolYear)
}

type AssignmentResponse struct {
	AssignmentID uuid.UUID `json:"assignment_id"`
	TeacherID    uuid.UUID `json:"assignment_teacher_id"`
	SubjectID    uuid.UUID `json:"assignment_subject_id"`
	ClassID      uuid.UUID `json:"assignment_class_id"`
	SchoolYear   string    `json:"assignment_school_year"`
	CreatedAt    time.Time `json:"assignment_created_at"`
}

func FromAssignmentModel(mm m.TeachingAssignmentModel) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID: mm.AssignmentID,
		TeacherID:    mm.AssignmentTeacherID,
		SubjectID:    mm.AssignmentSubjectID,
		ClassID:      mm.AssignmentClassID,
		SchoolYear:   mm.AssignmentSchoolYear,
		CreatedAt:    mm.AssignmentCreatedAt,
	}
}

func FromAssignmentModels(ms []m.TeachingAssignmentModel) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(ms))
	for _, mm := range ms {
		out = append(out, FromAssignmentModel(mm))
	}
	return out
}

/* =========================================================
   RESPONSE
   ========================================================= */

type TeacherResponse struct {
	TeacherID uuid.UUID      `json:"teacher_id"`
	FirstName string         `json:"teacher_first_name"`
	LastName  string         `json:"teacher_last_name"`
	Gender    string         `json:"teacher_gender"`
	Email     string         `json:"teacher_email"`
	Phone     string         `json:"teacher_phone"`
	Address   *string        `json:"teacher_address,omitempty"`
	Diploma   *string        `json:"teacher_diploma,omitempty"`
	HireDate  datatypes.Date `json:"teacher_hire_date"`
	Status    string         `json:"teacher_status"`
	CreatedAt time.Time      `json:"teacher_created_at"`
	UpdatedAt time.Time      `json:"teacher_updated_at"`
}

func FromTeacherModel(mm m.TeacherModel) TeacherResponse {
	return TeacherResponse{
		TeacherID: mm.TeacherID,
		FirstName: mm.TeacherFirstName,
		LastName:  mm.TeacherLastName,
		Gender:    mm.TeacherGender,
		Email:     mm.TeacherEmail,
		Phone:     mm.TeacherPhone,
		Address:   mm.TeacherAddress,
		Diploma:   mm.TeacherDiploma,
		HireDate:  mm.TeacherHireDate,
		Status:    mm.TeacherStatus,
		CreatedAt: mm.TeacherCreatedAt,
		UpdatedAt: mm.TeacherUpdatedAt,
	}
}

func FromTeacherModels(ms []m.TeacherModel) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(ms))
	for _, mm := range ms {
		out = append(out, FromTeacherModel(mm))
	}
	return out
}
