package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "schooladmin_backend/internals/features/school/students/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateStudentRequest struct {
	SectionID     uuid.UUID `json:"student_section_id" validate:"required"`
	ClassID       uuid.UUID `json:"student_class_id" validate:"required"`
	Matricule     string    `json:"student_matricule" validate:"required,min=3,max=40"`
	FirstName     string    `json:"student_first_name" validate:"required,min=1,max=100"`
	LastName      string    `json:"student_last_name" validate:"required,min=1,max=100"`
	Gender        string    `json:"student_gender" validate:"required,oneof=masculin feminin"`
	BirthDate     string    `json:"student_birth_date" validate:"required,datetime=2006-01-02"`
	BirthPlace    *string   `json:"student_birth_place" validate:"omitempty,max=120"`
	Status        *string   `json:"student_status" validate:"omitempty,oneof=inscrit redoublant nouveau transfere abandonne"`
	GuardianName  string    `json:"student_guardian_name" validate:"required,min=1,max=150"`
	GuardianPhone string    `json:"student_guardian_phone" validate:"required,min=6,max=30"`
	Address       *string   `json:"student_address"`
}

func (r *CreateStudentRequest) Normalize() {
	r.Matricule = strings.ToUpper(strings.TrimSpace(r.Matricule))
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Gender = strings.ToLower(strings.TrimSpace(r.Gender))
	r.BirthDate = strings.TrimSpace(r.BirthDate)
	r.GuardianName = strings.TrimSpace(r.GuardianName)
	r.GuardianPhone = strings.TrimSpace(r.GuardianPhone)
	if r.BirthPlace != nil {
		v := strings.TrimSpace(*r.BirthPlace)
		if v == "" {
			r.BirthPlace = nil
		} else {
			r.BirthPlace = &v
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
	if r.Address != nil {
		v := strings.TrimSpace(*r.Address)
		if v == "" {
			r.Address = nil
		} else {
			r.Address = &v
		}
	}
}

func (r CreateStudentRequest) ToModel() m.StudentModel {
	now := time.Now()
	birth, _ := time.Parse("2006-01-02", r.BirthDate)
	mm := m.StudentModel{
		StudentSectionID:     r.SectionID,
		StudentClassID:       r.ClassID,
		StudentMatricule:     r.Matricule,
		StudentFirstName:     r.FirstName,
		StudentLastName:      r.LastName,
		StudentGender:        r.Gender,
		StudentBirthDate:     datatypes.Date(birth),
		StudentBirthPlace:    r.BirthPlace,
		StudentStatus:        m.StudentStatusNouveau,
		StudentGuardianName:  r.GuardianName,
		StudentGuardianPhone: r.GuardianPhone,
		StudentAddress:       r.Address,
		StudentIsActive:      true,
		StudentCreatedAt:     now,
		StudentUpdatedAt:     now,
	}
	if r.Status != nil {
		mm.StudentStatus = *r.Status
	}
	return mm
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateStudentRequest struct {
	SectionID     *uuid.UUID `json:"student_section_id"`
	ClassID       *uuid.UUID `json:"student_class_id"`
	FirstName     *string    `json:"student_first_name" validate:"omitempty,min=1,max=100"`
	LastName      *string    `json:"student_last_name" validate:"omitempty,min=1,max=100"`
	Gender        *string    `json:"student_gender" validate:"omitempty,oneof=masculin feminin"`
	BirthDate     *string    `json:"student_birth_date" validate:"omitempty,datetime=2006-01-02"`
	BirthPlace    *string    `json:"student_birth_place" validate:"omitempty,max=120"`
	Status        *string    `json:"student_status" validate:"omitempty,oneof=inscrit redoublant nouveau transfere abandonne"`
	GuardianName  *string    `json:"student_guardian_name" validate:"omitempty,min=1,max=150"`
	GuardianPhone *string    `json:"student_guardian_phone" validate:"omitempty,min=6,max=30"`
	Address       *string    `json:"student_address"`
}

func (r UpdateStudentRequest) Apply(mm *m.StudentModel) {
	if r.SectionID != nil {
		mm.StudentSectionID = *r.SectionID
	}
	if r.ClassID != nil {
		mm.StudentClassID = *r.ClassID
	}
	if r.FirstName != nil {
		mm.StudentFirstName = strings.TrimSpace(*r.FirstName)
	}
	if r.LastName != nil {
		mm.StudentLastName = strings.TrimSpace(*r.LastName)
	}
	if r.Gender != nil {
		mm.StudentGender = strings.ToLower(strings.TrimSpace(*r.Gender))
	}
	if r.BirthDate != nil {
		if t, err := time.Parse("2006-01-02", strings.TrimSpace(*r.BirthDate)); err == nil {
			mm.StudentBirthDate = datatypes.Date(t)
		}
	}
	if r.BirthPlace != nil {
		v := strings.TrimSpace(*r.BirthPlace)
		if v == "" {
			mm.StudentBirthPlace = nil
		} else {
			mm.StudentBirthPlace = &v
		}
	}
	if r.Status != nil {
		mm.StudentStatus = strings.ToLower(strings.TrimSpace(*r.Status))
	}
	if r.GuardianName != nil {
		mm.StudentGuardianName = strings.TrimSpace(*r.GuardianName)
	}
	if r.GuardianPhone != nil {
		mm.StudentGuardianPhone = strings.TrimSpace(*r.GuardianPhone)
	}
	if r.Address != nil {
		v := strings.TrimSpace(*r.Address)
		if v == "" {
			mm.StudentAddress = nil
		} else {
			mm.StudentAddress = &v
		}
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type StudentResponse struct {
	StudentID     uuid.UUID      `json:"student_id"`
	SectionID     uuid.UUID      `json:"student_section_id"`
	ClassID       uuid.UUID      `json:"student_class_id"`
	Matricule     string         `json:"student_matricule"`
	FirstName     string         `json:"student_first_name"`
	LastName      string         `json:"student_last_name"`
	Gender        string         `json:"student_gender"`
	BirthDate     datatypes.Date `json:"student_birth_date"`
	BirthPlace    *string        `json:"student_birth_place,omitempty"`
	Status        string         `json:"student_status"`
	GuardianName  string         `json:"student_guardian_name"`
	GuardianPhone string         `json:"student_guardian_phone"`
	Address       *string        `json:"student_address,omitempty"`
	IsActive      bool           `json:"student_is_active"`
	CreatedAt     time.Time      `json:"student_created_at"`
	UpdatedAt     time.Time      `json:"student_updated_at"`
}

func FromStudentModel(mm m.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:     mm.StudentID,
		SectionID:     mm.StudentSectionID,
		ClassID:       mm.StudentClassID,
		Matricule:     mm.StudentMatricule,
		FirstName:     mm.StudentFirstName,
		LastName:      mm.StudentLastName,
		Gender:        mm.StudentGender,
		BirthDate:     mm.StudentBirthDate,
		BirthPlace:    mm.StudentBirthPlace,
		Status:        mm.StudentStatus,
		GuardianName:  mm.StudentGuardianName,
		GuardianPhone: mm.StudentGuardianPhone,
		Address:       mm.StudentAddress,
		IsActive:      mm.StudentIsActive,
		CreatedAt:     mm.StudentCreatedAt,
		UpdatedAt:     mm.StudentUpdatedAt,
	}
}

func FromStudentModels(ms []m.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for _, mm := range ms {
		out = append(out, FromStudentModel(mm))
	}
	return out
}
