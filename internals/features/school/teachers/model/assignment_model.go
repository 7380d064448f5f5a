// internals/features/school/teachers/model/assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// NOTE: one row per (teacher, subject, class); deleting an assignment
// removes it for real.
type TeachingAssignmentModel struct {
	AssignmentID uuid.UUID `gorm:"column:assignment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"assignment_id"`

	AssignmentTeacherID uuid.UUID `gorm:"column:assignment_teacher_id;type:uuid;not null;index;uniqueIndex:uq_assignments_teacher_subject_class" json:"assignment_teacher_id"`
	AssignmentSubjectID uuid.UUID `gorm:"column:assignment_subject_id;type:uuid;not null;uniqueIndex:uq_assignments_teacher_subject_class" json:"assignment_subject_id"`
	AssignmentClassID   uuid.UUID `gorm:"column:assignment_class_id;type:uuid;not null;index;uniqueIndex:uq_assignments_teacher_subject_class" json:"assignment_class_id"`

	AssignmentSchoolYear string `gorm:"column:assignment_school_year;type:varchar(9);not null" json:"assignment_school_year"`

	AssignmentCreatedAt time.Time `gorm:"column:assignment_created_at;not null;autoCreateTime" json:"assignment_created_at"`
	AssignmentUpdatedAt time.Time `gorm:"column:assignment_updated_at;not null;autoUpdateTime" json:"assignment_updated_at"`
}

func (TeachingAssignmentModel) TableName() string { return "teaching_assignments" }
