package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vyoma/domain"
	"vyoma/dto"
	"vyoma/middleware"
	"vyoma/utils"
)

type AuthHandler struct {
	authUC domain.AuthUseCase
}

// NewAuthHandler registers the auth routes. The OTP endpoints stay outside
// the storage gate: they only touch the registry, never the credential store.
func NewAuthHandler(r *gin.Engine, authUC domain.AuthUseCase, tokens *utils.JWTManager, storeAvailable func() bool) {
	handler := &AuthHandler{authUC: authUC}

	otp := r.Group("/api/auth")
	{
		otp.POST("/send-otp", handler.SendOTP)
		otp.POST("/verify-otp", handler.VerifyOTP)
	}

	guarded := r.Group("/api/auth")
	guarded.Use(middleware.StorageGuard(storeAvailable))
	{
		guarded.POST("/signup", handler.Signup)
		guarded.POST("/login", handler.Login)
		guarded.PUT("/update-profile", middleware.RequireAuth(tokens), handler.UpdateProfile)
	}
}

func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req dto.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(nil, http.StatusBadRequest, "SendOTP")
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Valid email is required",
			"error":   utils.TranslateValidationError(err),
		})
		return
	}

	if err := h.authUC.SendOTP(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			utils.PrintLogInfo(&req.Email, http.StatusBadRequest, "SendOTP")
			c.JSON(http.StatusBadRequest, gin.H{"message": "Valid email is required"})
			return
		}
		utils.PrintLogInfo(&req.Email, http.StatusInternalServerError, "SendOTP")
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to send OTP",
			"error":   err.Error(),
		})
		return
	}

	utils.PrintLogInfo(&req.Email, http.StatusOK, "SendOTP")
	c.JSON(http.StatusOK, gin.H{
		"message": "OTP sent successfully to your email",
		"email":   req.Email,
	})
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(nil, http.StatusBadRequest, "VerifyOTP")
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Email and OTP are required",
			"error":   utils.TranslateValidationError(err),
		})
		return
	}

	if err := h.authUC.VerifyOTP(c.Request.Context(), req.Email, req.OTP); err != nil {
		if errors.Is(err, domain.ErrOTPInvalid) {
			utils.PrintLogInfo(&req.Email, http.StatusUnauthorized, "VerifyOTP")
			c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
			return
		}
		utils.PrintLogInfo(&req.Email, http.StatusInternalServerError, "VerifyOTP")
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error verifying OTP",
			"error":   err.Error(),
		})
		return
	}

	utils.PrintLogInfo(&req.Email, http.StatusOK, "VerifyOTP")
	c.JSON(http.StatusOK, gin.H{
		"message": "OTP verified successfully",
		"email":   req.Email,
	})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(nil, http.StatusBadRequest, "Signup")
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid signup payload",
			"error":   utils.TranslateValidationError(err),
		})
		return
	}

	result, err := h.authUC.Signup(c.Request.Context(), domain.SignupInput{
		FullName: req.FullName,
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			utils.PrintLogInfo(&req.Email, http.StatusConflict, "Signup")
			c.JSON(http.StatusConflict, gin.H{"message": "Email already in use"})
		case errors.Is(err, domain.ErrStorageUnavailable):
			utils.PrintLogInfo(&req.Email, http.StatusServiceUnavailable, "Signup")
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"message": "Database connection unavailable",
				"error":   "The database is currently offline. Please try again later.",
			})
		default:
			utils.PrintLogInfo(&req.Email, http.StatusInternalServerError, "Signup")
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Server error during signup",
				"error":   err.Error(),
			})
		}
		return
	}

	utils.PrintLogInfo(&req.Email, http.StatusCreated, "Signup")
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"token":   result.Token,
		"user":    dto.NewUserResponse(result.User),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(nil, http.StatusBadRequest, "Login")
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid login payload",
			"error":   utils.TranslateValidationError(err),
		})
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			utils.PrintLogInfo(&req.Email, http.StatusUnauthorized, "Login")
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		case errors.Is(err, domain.ErrStorageUnavailable):
			utils.PrintLogInfo(&req.Email, http.StatusServiceUnavailable, "Login")
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"message": "Database connection unavailable",
				"error":   "The database is currently offline. Please try again later.",
			})
		default:
			utils.PrintLogInfo(&req.Email, http.StatusInternalServerError, "Login")
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Server error during login",
				"error":   err.Error(),
			})
		}
		return
	}

	utils.PrintLogInfo(&req.Email, http.StatusOK, "Login")
	c.JSON(http.StatusOK, gin.H{
		"message": "Authenticated successfully",
		"token":   result.Token,
		"user":    dto.NewUserResponse(result.User),
	})
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	email := c.GetString(middleware.ContextEmail)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(&email, http.StatusBadRequest, "UpdateProfile")
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid update payload",
			"details": utils.TranslateValidationError(err),
		})
		return
	}

	user, err := h.authUC.UpdateProfile(c.Request.Context(), userID, domain.ProfileUpdate{
		FullName: req.FullName,
		Username: req.Username,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			utils.PrintLogInfo(&email, http.StatusNotFound, "UpdateProfile")
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, domain.ErrStorageUnavailable):
			utils.PrintLogInfo(&email, http.StatusServiceUnavailable, "UpdateProfile")
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"message": "Database connection unavailable",
				"error":   "The database is currently offline. Please try again later.",
			})
		default:
			utils.PrintLogInfo(&email, http.StatusInternalServerError, "UpdateProfile")
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Server error during profile update",
				"error":   err.Error(),
			})
		}
		return
	}

	utils.PrintLogInfo(&email, http.StatusOK, "UpdateProfile")
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    dto.NewProfileResponse(user),
	})
}
