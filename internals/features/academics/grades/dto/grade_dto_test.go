package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "schooladmin_backend/internals/features/academics/grades/model"
)

func TestCreateGradeFinalScoreDefaultsToScore(t *testing.T) {
	req := CreateGradeRequest{
		Sequence:        1,
		EvaluationType:  m.EvaluationComposition,
		Score:           13.5,
		CompositionDate: "2026-01-15",
	}
	mm := req.ToModel()
	assert.Equal(t, 13.5, mm.GradeScore)
	assert.Equal(t, 13.5, mm.GradeFinalScore)
}

func TestCreateGradeExplicitFinalScore(t *testing.T) {
	final := 14.0
	req := CreateGradeRequest{
		Sequence:        1,
		EvaluationType:  m.EvaluationExam,
		Score:           13.5,
		FinalScore:      &final,
		CompositionDate: "2026-01-15",
	}
	mm := req.ToModel()
	assert.Equal(t, 13.5, mm.GradeScore)
	assert.Equal(t, 14.0, mm.GradeFinalScore)
}

func TestUpdateGradeScoreDragsFinalScore(t *testing.T) {
	mm := m.GradeModel{GradeScore: 10, GradeFinalScore: 11}

	score := 15.0
	UpdateGradeRequest{Score: &score}.Apply(&mm)
	assert.Equal(t, 15.0, mm.GradeScore)
	assert.Equal(t, 15.0, mm.GradeFinalScore)
}

func TestUpdateGradeExplicitFinalScoreWins(t *testing.T) {
	mm := m.GradeModel{GradeScore: 10, GradeFinalScore: 10}

	score := 15.0
	final := 16.0
	UpdateGradeRequest{Score: &score, FinalScore: &final}.Apply(&mm)
	assert.Equal(t, 15.0, mm.GradeScore)
	assert.Equal(t, 16.0, mm.GradeFinalScore)
}
