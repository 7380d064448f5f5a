package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "schooladmin_backend/internals/features/academics/grades/model"
	svc "schooladmin_backend/internals/features/academics/grades/service"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateGradeRequest struct {
	StudentID       uuid.UUID `json:"grade_student_id" validate:"required"`
	SubjectID       uuid.UUID `json:"grade_subject_id" validate:"required"`
	Sequence        int       `json:"grade_sequence" validate:"required,min=1,max=6"`
	EvaluationType  string    `json:"grade_evaluation_type" validate:"required,oneof=composition controlled_test exam homework"`
	Score           float64   `json:"grade_score" validate:"min=0,max=20"`
	FinalScore      *float64  `json:"grade_final_score" validate:"omitempty,min=0,max=20"`
	CompositionDate string    `json:"grade_composition_date" validate:"required,datetime=2006-01-02"`
	Remark          *string   `json:"grade_remark"`
}

func (r *CreateGradeRequest) Normalize() {
	r.EvaluationType = strings.ToLower(strings.TrimSpace(r.EvaluationType))
	r.CompositionDate = strings.TrimSpace(r.CompositionDate)
	if r.Remark != nil {
		v := strings.TrimSpace(*r.Remark)
		if v == "" {
			r.Remark = nil
		} else {
			r.Remark = &v
		}
	}
}

func (r CreateGradeRequest) ToModel() m.GradeModel {
	now := time.Now()
	date, _ := time.Parse("2006-01-02", r.CompositionDate)
	mm := m.GradeModel{
		GradeStudentID:       r.StudentID,
		GradeSubjectID:       r.SubjectID,
		GradeSequence:        r.Sequence,
		GradeEvaluationType:  r.EvaluationType,
		GradeScore:           r.Score,
		GradeFinalScore:      r.Score,
		GradeCompositionDate: datatypes.Date(date),
		GradeRemark:          r.Remark,
		GradeCreatedAt:       now,
		GradeUpdatedAt:       now,
	}
	if r.FinalScore != nil {
		mm.GradeFinalScore = *r.FinalScore
	}
	return mm
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateGradeRequest struct {
	EvaluationType  *string  `json:"grade_evaluation_type" validate:"omitempty,oneof=composition controlled_test exam homework"`
	Score           *float64 `json:"grade_score" validate:"omitempty,min=0,max=20"`
	FinalScore      *float64 `json:"grade_final_score" validate:"omitempty,min=0,max=20"`
	CompositionDate *string  `json:"grade_composition_date" validate:"omitempty,datetime=2006-01-02"`
	Remark          *string  `json:"grade_remark"`
}

// Apply mutates the model in place. A new score with no explicit final
// score drags the final score along with it.
func (r UpdateGradeRequest) Apply(mm *m.GradeModel) {
	if r.EvaluationType != nil {
		mm.GradeEvaluationType = strings.ToLower(strings.TrimSpace(*r.EvaluationType))
	}
	if r.Score != nil {
		mm.GradeScore = *r.Score
		if r.FinalScore == nil {
			mm.GradeFinalScore = *r.Score
		}
	}
	if r.FinalScore != nil {
		mm.GradeFinalScore = *r.FinalScore
	}
	if r.CompositionDate != nil {
		if t, err := time.Parse("2006-01-02", strings.TrimSpace(*r.CompositionDate)); err == nil {
			mm.GradeCompositionDate = datatypes.Date(t)
		}
	}
	if r.Remark != nil {
		v := strings.TrimSpace(*r.Remark)
		if v == "" {
			mm.GradeRemark = nil
		} else {
			mm.GradeRemark = &v
		}
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type GradeResponse struct {
	GradeID         uuid.UUID      `json:"grade_id"`
	StudentID       uuid.UUID      `json:"grade_student_id"`
	SubjectID       uuid.UUID      `json:"grade_subject_id"`
	Sequence        int            `json:"grade_sequence"`
	EvaluationType  string         `json:"grade_evaluation_type"`
	Score           float64        `json:"grade_score"`
	FinalScore      float64        `json:"grade_final_score"`
	CompositionDate datatypes.Date `json:"grade_composition_date"`
	Remark          *string        `json:"grade_remark,omitempty"`
	CreatedAt       time.Time      `json:"grade_created_at"`
	UpdatedAt       time.Time      `json:"grade_updated_at"`
}

func FromGradeModel(mm m.GradeModel) GradeResponse {
	return GradeResponse{
		GradeID:         mm.GradeID,
		StudentID:       mm.GradeStudentID,
		SubjectID:       mm.GradeSubjectID,
		Sequence:        mm.GradeSequence,
		EvaluationType:  mm.GradeEvaluationType,
		Score:           mm.GradeScore,
		FinalScore:      mm.GradeFinalScore,
		CompositionDate: mm.GradeCompositionDate,
		Remark:          mm.GradeRemark,
		CreatedAt:       mm.GradeCreatedAt,
		UpdatedAt:       mm.GradeUpdatedAt,
	}
}

func FromGradeModels(ms []m.GradeModel) []GradeResponse {
	out := make([]GradeResponse, 0, len(ms))
	for _, mm := range ms {
		out = append(out, FromGradeModel(mm))
	}
	return out
}

/* =========================================================
   BULLETIN / RANKING / STATISTICS
   ========================================================= */

type BulletinLine struct {
	SubjectID   uuid.UUID `json:"subject_id"`
	SubjectName string    `json:"subject_name"`
	Coefficient int       `json:"subject_coefficient"`
	Score       float64   `json:"grade_score"`
	FinalScore  float64   `json:"grade_final_score"`
	Weighted    float64   `json:"weighted_score"`
}

type BulletinResponse struct {
	StudentID    uuid.UUID      `json:"student_id"`
	Matricule    string         `json:"student_matricule"`
	FullName     string         `json:"student_full_name"`
	ClassID      uuid.UUID      `json:"class_id"`
	Sequence     int            `json:"sequence"`
	Trimester    int            `json:"trimester"`
	Lines        []BulletinLine `json:"lines"`
	Average      float64        `json:"average"`
	Mention      string         `json:"mention"`
	Appreciation string         `json:"appreciation"`
}

type RankingResponse struct {
	ClassID        uuid.UUID       `json:"class_id"`
	Sequence       int             `json:"sequence"`
	RankedStudents int             `json:"ranked_students"`
	Entries        []svc.RankEntry `json:"entries"`
}

type StatisticsResponse struct {
	ClassID  uuid.UUID `json:"class_id"`
	Sequence int       `json:"sequence"`
	svc.SequenceStats
}
