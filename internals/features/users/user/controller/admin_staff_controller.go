// internals/features/users/user/controller/admin_staff_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userDTO "schooladmin_backend/internals/features/users/user/dto"
	userModel "schooladmin_backend/internals/features/users/user/model"
	helper "schooladmin_backend/internals/helpers"
)

type AdminStaffController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAdminStaffController(db *gorm.DB) *AdminStaffController {
	return &AdminStaffController{DB: db, Validate: validator.New()}
}

// POST /api/sa/staff
func (h *AdminStaffController) Create(c *fiber.Ctx) error {
	var req userDTO.CreateAdminStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&userModel.AdminStaffModel{}).
			Where("admin_staff_email = ?", req.Email).Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check staff email")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Email already in use")
		}

		m := userModel.AdminStaffModel{
			AdminStaffUserName: req.UserName,
			AdminStaffEmail:    req.Email,
			AdminStaffPassword: string(hash),
			AdminStaffRole:     req.Role,
			AdminStaffIsActive: true,
		}
		if err := tx.Create(&m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Email already in use")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create staff account")
		}
		c.Locals("created_staff", m)
		return nil
	})
	if err != nil {
		return err
	}

	m := c.Locals("created_staff").(userModel.AdminStaffModel)
	return helper.JsonCreated(c, "Staff account created", userDTO.FromAdminStaffModel(m))
}

// GET /api/sa/staff?role=&search=
func (h *AdminStaffController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&userModel.AdminStaffModel{})
	if v := strings.ToLower(strings.TrimSpace(c.Query("role"))); v != "" {
		q = q.Where("admin_staff_role = ?", v)
	}
	if v := strings.TrimSpace(c.Query("search")); v != "" {
		like := "%" + v + "%"
		q = q.Where("admin_staff_user_name ILIKE ? OR admin_staff_email ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count staff accounts")
	}

	var rows []userModel.AdminStaffModel
	if err := q.Order("admin_staff_created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list staff accounts")
	}
	return helper.JsonList(c, "Staff accounts fetched", userDTO.FromAdminStaffModels(rows), helper.BuildPagination(total, p))
}

// GET /api/sa/staff/:id
func (h *AdminStaffController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid staff ID")
	}

	var m userModel.AdminStaffModel
	if err := h.DB.Where("admin_staff_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Staff account not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch staff account")
	}
	return helper.JsonOK(c, "Staff account fetched", userDTO.FromAdminStaffModel(m))
}

// PUT /api/sa/staff/:id
func (h *AdminStaffController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid staff ID")
	}

	var req userDTO.UpdateAdminStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m userModel.AdminStaffModel
	if err := h.DB.Where("admin_staff_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Staff account not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch staff account")
	}

	if req.Email != nil && !strings.EqualFold(strings.TrimSpace(*req.Email), m.AdminStaffEmail) {
		var cnt int64
		if err := h.DB.Model(&userModel.AdminStaffModel{}).
			Where("admin_staff_email = ? AND admin_staff_id <> ?", strings.ToLower(strings.TrimSpace(*req.Email)), id).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check staff email")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Email already in use")
		}
	}

	req.Apply(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Email already in use")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update staff account")
	}
	return helper.JsonUpdated(c, "Staff account updated", userDTO.FromAdminStaffModel(m))
}

// DELETE /api/sa/staff/:id  (deactivate + soft delete)
func (h *AdminStaffController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid staff ID")
	}

	// an account cannot remove itself
	if selfID, err := helper.GetUserIDFromToken(c); err == nil && selfID == id {
		return fiber.NewError(fiber.StatusConflict, "Cannot delete your own account")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var m userModel.AdminStaffModel
		if err := tx.Where("admin_staff_id = ?", id).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Staff account not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch staff account")
		}

		m.AdminStaffIsActive = false
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to deactivate staff account")
		}
		if err := tx.Delete(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete staff account")
		}
		return nil
	})
	if err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Staff account deleted", fiber.Map{"admin_staff_id": id})
}
