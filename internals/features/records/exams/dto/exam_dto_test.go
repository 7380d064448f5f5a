package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "schooladmin_backend/internals/features/records/exams/model"
)

func TestUpdateExamDossierApply(t *testing.T) {
	notes := "Convocation envoyée"
	mm := m.ExamDossierModel{
		ExamName:    "CEP",
		ExamSession: "2025-2026",
		ExamNotes:   &notes,
	}

	name := "  Concours d'entrée en 6e  "
	UpdateExamDossierRequest{Name: &name}.Apply(&mm)
	assert.Equal(t, "Concours d'entrée en 6e", mm.ExamName)
	// untouched fields survive a partial update
	assert.Equal(t, "2025-2026", mm.ExamSession)
	assert.Equal(t, &notes, mm.ExamNotes)

	empty := ""
	UpdateExamDossierRequest{Notes: &empty}.Apply(&mm)
	assert.Nil(t, mm.ExamNotes)
}
