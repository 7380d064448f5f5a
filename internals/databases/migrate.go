// internals/databases/migrate.go
package database

import (
	"log"

	gradeModel "schooladmin_backend/internals/features/academics/grades/model"
	subjectModel "schooladmin_backend/internals/features/academics/subjects/model"
	equipmentModel "schooladmin_backend/internals/features/inventory/equipment/model"
	maintenanceModel "schooladmin_backend/internals/features/personnel/maintenance/model"
	absenceModel "schooladmin_backend/internals/features/records/absences/model"
	disciplineModel "schooladmin_backend/internals/features/records/discipline/model"
	enrollmentModel "schooladmin_backend/internals/features/records/enrollments/model"
	examModel "schooladmin_backend/internals/features/records/exams/model"
	classModel "schooladmin_backend/internals/features/school/classes/model"
	sectionModel "schooladmin_backend/internals/features/school/sections/model"
	studentModel "schooladmin_backend/internals/features/school/students/model"
	teacherModel "schooladmin_backend/internals/features/school/teachers/model"
	authModel "schooladmin_backend/internals/features/users/auth/model"
	userModel "schooladmin_backend/internals/features/users/user/model"
)

// AutoMigrate keeps the schema in sync on startup. Ordered so that
// referenced tables exist before the tables referencing them.
func AutoMigrate() {
	err := DB.AutoMigrate(
		&sectionModel.SectionModel{},
		&classModel.ClassModel{},
		&studentModel.StudentModel{},
		&teacherModel.TeacherModel{},
		&teacherModel.TeachingAssignmentModel{},
		&subjectModel.SubjectModel{},
		&gradeModel.GradeModel{},
		&enrollmentModel.EnrollmentModel{},
		&absenceModel.AbsenceModel{},
		&disciplineModel.DisciplineRecordModel{},
		&examModel.ExamDossierModel{},
		&maintenanceModel.MaintenanceStaffModel{},
		&equipmentModel.EquipmentModel{},
		&userModel.AdminStaffModel{},
		&authModel.TokenBlacklist{},
		&authModel.RefreshToken{},
	)
	if err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Schema migrated.")
}
