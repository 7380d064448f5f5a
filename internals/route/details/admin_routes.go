// internals/route/details/admin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/constants"
	authMiddleware "schooladmin_backend/internals/middlewares/auth"

	gradeRoute "schooladmin_backend/internals/features/academics/grades/route"
	subjectRoute "schooladmin_backend/internals/features/academics/subjects/route"
	equipmentRoute "schooladmin_backend/internals/features/inventory/equipment/route"
	absenceRoute "schooladmin_backend/internals/features/records/absences/route"
	disciplineRoute "schooladmin_backend/internals/features/records/discipline/route"
	enrollmentRoute "schooladmin_backend/internals/features/records/enrollments/route"
	examRoute "schooladmin_backend/internals/features/records/exams/route"
	classRoute "schooladmin_backend/internals/features/school/classes/route"
	sectionRoute "schooladmin_backend/internals/features/school/sections/route"
	studentRoute "schooladmin_backend/internals/features/school/students/route"
	teacherRoute "schooladmin_backend/internals/features/school/teachers/route"
)

// AdminRoutes wires every feature an admin works with day to day.
func AdminRoutes(app *fiber.App, db *gorm.DB) {
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorStaff("school administration"),
			constants.AllRoles...,
		),
	)

	sectionRoute.SectionAdminRoutes(admin, db)
	classRoute.ClassAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db)
	teacherRoute.TeacherAdminRoutes(admin, db)

	subjectRoute.SubjectAdminRoutes(admin, db)
	gradeRoute.GradeAdminRoutes(admin, db)

	enrollmentRoute.EnrollmentAdminRoutes(admin, db)
	absenceRoute.AbsenceAdminRoutes(admin, db)
	disciplineRoute.DisciplineAdminRoutes(admin, db)
	examRoute.ExamAdminRoutes(admin, db)

	equipmentRoute.EquipmentAdminRoutes(admin, db)
}
