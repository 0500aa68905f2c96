package public

import (
	"github.com/crave-wave/cravewave/internal/http/response"
	"github.com/crave-wave/cravewave/internal/models"
	"github.com/crave-wave/cravewave/internal/service"

	"github.com/gin-gonic/gin"
)

// UserRegisterRequest signup request
type UserRegisterRequest struct {
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
	FullName     string `json:"full_name"`
	MobileNumber string `json:"mobile_number"`
	Address      string `json:"address"`
}

// UserLoginRequest login request
type UserLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserProfileUpdateRequest profile patch request
type UserProfileUpdateRequest struct {
	FullName     *string `json:"full_name"`
	MobileNumber *string `json:"mobile_number"`
	Address      *string `json:"address"`
}

// UserChangePasswordRequest password change request
type UserChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

func userProfileView(user *models.User) gin.H {
	return gin.H{
		"id":            user.ID,
		"email":         user.Email,
		"full_name":     user.FullName,
		"mobile_number": user.MobileNumber,
		"address":       user.Address,
		"last_login_at": user.LastLoginAt,
		"created_at":    user.CreatedAt,
	}
}

// UserRegister creates an account
func (h *Handler) UserRegister(c *gin.Context) {
	var req UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	user, err := h.UserAuthService.Register(service.RegisterInput{
		Email:        req.Email,
		Password:     req.Password,
		FullName:     req.FullName,
		MobileNumber: req.MobileNumber,
		Address:      req.Address,
	})
	if err != nil {
		respondWithMappedError(c, err, authErrorRules, response.CodeInternal, "registration failed")
		return
	}
	response.Success(c, userProfileView(user))
}

// UserLogin checks credentials and issues a token
func (h *Handler) UserLogin(c *gin.Context) {
	var req UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	user, token, expiresAt, err := h.UserAuthService.Login(req.Email, req.Password)
	if err != nil {
		respondWithMappedError(c, err, authErrorRules, response.CodeInternal, "login failed")
		return
	}
	response.Success(c, gin.H{
		"token":      token,
		"expires_at": expiresAt,
		"user":       userProfileView(user),
	})
}

// UserLogout revokes every outstanding token
func (h *Handler) UserLogout(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	if err := h.UserAuthService.Logout(uid); err != nil {
		respondWithMappedError(c, err, authErrorRules, response.CodeInternal, "logout failed")
		return
	}
	response.Success(c, gin.H{"logged_out": true})
}

// UserProfile returns the current user's profile
func (h *Handler) UserProfile(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	user, err := h.UserAuthService.GetProfile(uid)
	if err != nil {
		respondWithMappedError(c, err, authErrorRules, response.CodeInternal, "could not load profile")
		return
	}
	response.Success(c, userProfileView(user))
}

// UserProfileUpdate patches profile fields
func (h *Handler) UserProfileUpdate(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req UserProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	user, err := h.UserAuthService.UpdateProfile(uid, service.UpdateProfileInput{
		FullName:     req.FullName,
		MobileNumber: req.MobileNumber,
		Address:      req.Address,
	})
	if err != nil {
		respondWithMappedError(c, err, authErrorRules, response.CodeInternal, "could not update profile")
		return
	}
	response.Success(c, userProfileView(user))
}

// UserChangePassword rotates the password and revokes tokens
func (h *Handler) UserChangePassword(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req UserChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	if err := h.UserAuthService.ChangePassword(uid, req.OldPassword, req.NewPassword); err != nil {
		respondWithMappedError(c, err, authErrorRules, response.CodeInternal, "could not change password")
		return
	}
	response.Success(c, gin.H{"changed": true})
}
