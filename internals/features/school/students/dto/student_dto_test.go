package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	m "schooladmin_backend/internals/features/school/students/model"
)

func TestCreateStudentCarriesSectionAndClass(t *testing.T) {
	sectionID := uuid.New()
	classID := uuid.New()

	req := CreateStudentRequest{
		SectionID:     sectionID,
		ClassID:       classID,
		Matricule:     "mat-2026-001",
		FirstName:     "Awa",
		LastName:      "Diallo",
		Gender:        "feminin",
		BirthDate:     "2018-05-02",
		GuardianName:  "Mme Diallo",
		GuardianPhone: "+237600000000",
	}
	req.Normalize()

	mm := req.ToModel()
	assert.Equal(t, sectionID, mm.StudentSectionID)
	assert.Equal(t, classID, mm.StudentClassID)
	assert.Equal(t, "MAT-2026-001", mm.StudentMatricule)
	assert.Equal(t, m.StudentStatusNouveau, mm.StudentStatus)
}

func TestUpdateStudentMovesSection(t *testing.T) {
	mm := m.StudentModel{
		StudentSectionID: uuid.New(),
		StudentClassID:   uuid.New(),
	}

	newSection := uuid.New()
	UpdateStudentRequest{SectionID: &newSection}.Apply(&mm)
	assert.Equal(t, newSection, mm.StudentSectionID)
}
