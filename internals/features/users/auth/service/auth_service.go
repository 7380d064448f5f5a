// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schooladmin_backend/internals/configs"
	authModel "schooladmin_backend/internals/features/users/auth/model"
	userDTO "schooladmin_backend/internals/features/users/user/dto"
	userModel "schooladmin_backend/internals/features/users/user/model"
	helper "schooladmin_backend/internals/helpers"
)

var validate = validator.New()

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type googleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type registerRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=60"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type changePasswordRequest struct {
	OldPassword     string `json:"old_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

func issueSession(db *gorm.DB, c *fiber.Ctx, user userModel.AdminStaffModel, message string) error {
	accessToken, err := CreateAccessToken(user)
	if err != nil {
		log.Println("[ERROR] Failed to sign access token:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create session")
	}
	refreshToken, err := CreateRefreshToken(db, user)
	if err != nil {
		log.Println("[ERROR] Failed to create refresh token:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create session")
	}
	setAuthCookies(c, accessToken, refreshToken)

	return helper.JsonOK(c, message, fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user":          userDTO.FromAdminStaffModel(user),
	})
}

// Login authenticates a staff account with email and password.
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.AdminStaffModel
	if err := db.Where("admin_staff_email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch account")
	}
	if !user.AdminStaffIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Your account has been deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.AdminStaffPassword), []byte(req.Password)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	return issueSession(db, c, user, "Login successful")
}

// LoginGoogle authenticates with a Google ID token. Only accounts already
// provisioned by a super admin can sign in this way.
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var req googleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if configs.GoogleClientID == "" {
		return fiber.NewError(fiber.StatusInternalServerError, "Google sign-in is not configured")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid Google token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil || claimSet.Email == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid Google token")
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	var user userModel.AdminStaffModel
	if err := db.Where("admin_staff_email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusForbidden, "No staff account for this Google identity")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch account")
	}
	if !user.AdminStaffIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Your account has been deactivated")
	}

	// link the Google subject on first Google sign-in
	if user.AdminStaffGoogleID == nil && claimSet.Sub != "" {
		sub := claimSet.Sub
		user.AdminStaffGoogleID = &sub
		if err := db.Save(&user).Error; err != nil {
			log.Println("[WARNING] Failed to link Google ID:", err)
		}
	}

	return issueSession(db, c, user, "Login successful")
}

// Register creates a regular admin account. Super admin accounts are only
// created through the staff management endpoints.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.UserName = strings.TrimSpace(req.UserName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	var cnt int64
	if err := db.Model(&userModel.AdminStaffModel{}).
		Where("admin_staff_email = ?", req.Email).Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check email")
	}
	if cnt > 0 {
		return fiber.NewError(fiber.StatusConflict, "Email already in use")
	}

	user := userModel.AdminStaffModel{
		AdminStaffUserName: req.UserName,
		AdminStaffEmail:    req.Email,
		AdminStaffPassword: string(hash),
		AdminStaffRole:     "admin",
		AdminStaffIsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Email already in use")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create account")
	}

	return helper.JsonCreated(c, "Account created", userDTO.FromAdminStaffModel(user))
}

// RefreshToken exchanges a valid refresh token for a fresh access token.
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	tokenString := c.Cookies("refresh_token")
	if tokenString == "" {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		if err := c.BodyParser(&body); err == nil {
			tokenString = strings.TrimSpace(body.RefreshToken)
		}
	}
	if tokenString == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Missing refresh token")
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTRefreshSecret), nil
	}); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")
	}

	var stored authModel.RefreshToken
	if err := db.Where("token = ? AND expires_at > ?", tokenString, time.Now()).First(&stored).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Refresh token is no longer valid")
	}

	rawID, _ := claims["id"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")
	}

	var user userModel.AdminStaffModel
	if err := db.Where("admin_staff_id = ?", userID).First(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Account not found")
	}
	if !user.AdminStaffIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Your account has been deactivated")
	}

	accessToken, err := CreateAccessToken(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create session")
	}
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  time.Now().Add(AccessTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return helper.JsonOK(c, "Token refreshed", fiber.Map{"access_token": accessToken})
}

// Logout blacklists the current access token and revokes every refresh
// token of the account.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tokenString := ""
	authHeader := c.Get("Authorization")
	if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		tokenString = parts[1]
	}
	if tokenString == "" {
		tokenString = c.Cookies("access_token")
	}
	if tokenString == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Missing token")
	}

	expiredAt := time.Now().Add(AccessTokenTTL)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}

	if err := db.Create(&authModel.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: expiredAt,
	}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to revoke token")
	}

	if userID, err := helper.GetUserIDFromToken(c); err == nil {
		if err := db.Where("user_id = ?", userID).Delete(&authModel.RefreshToken{}).Error; err != nil {
			log.Println("[WARNING] Failed to revoke refresh tokens:", err)
		}
	}

	clearAuthCookies(c)
	return helper.JsonOK(c, "Logout successful", fiber.Map{"revoked": true})
}

// ChangePassword verifies the current password before replacing it.
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.NewPassword != req.ConfirmPassword {
		return fiber.NewError(fiber.StatusBadRequest, "Password confirmation does not match")
	}

	var user userModel.AdminStaffModel
	if err := db.Where("admin_staff_id = ?", userID).First(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Account not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.AdminStaffPassword), []byte(req.OldPassword)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}
	user.AdminStaffPassword = string(hash)
	if err := db.Save(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.JsonUpdated(c, "Password changed", fiber.Map{"admin_staff_id": user.AdminStaffID})
}

// Me returns the authenticated account.
func Me(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.AdminStaffModel
	if err := db.Where("admin_staff_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Account not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch account")
	}
	return helper.JsonOK(c, "Account fetched", userDTO.FromAdminStaffModel(user))
}
