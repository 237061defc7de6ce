package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"telemedicine-platform-server/internal/config"
	"telemedicine-platform-server/internal/middleware"
	"telemedicine-platform-server/internal/models"
	"telemedicine-platform-server/internal/store"
	"telemedicine-platform-server/internal/utils"
)

// AuthHandler handles authentication-related requests.
type AuthHandler struct {
	Store *store.Store
	Cfg   *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(s *store.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{Store: s, Cfg: cfg}
}

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"role" binding:"required,oneof=patient doctor"`
	Specialty string `json:"specialty"`
}

// Register handles user registration.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	// Check if user already exists
	if _, err := h.Store.GetUserByEmail(req.Email); err == nil {
		utils.BadRequest(c, "User with this email already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("register: checking email: %v", err)
		utils.InternalServerError(c, "Failed to register user")
		return
	}

	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Role:      models.Role(req.Role),
		Specialty: req.Specialty,
	}

	if err := user.SetPassword(req.Password); err != nil {
		log.Printf("register: hashing password: %v", err)
		utils.InternalServerError(c, "Failed to register user")
		return
	}

	if err := h.Store.CreateUser(&user); err != nil {
		log.Printf("register: creating user: %v", err)
		utils.InternalServerError(c, "Failed to register user")
		return
	}

	utils.Created(c, "User registered successfully", user.Sanitize())
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response body for successful login.
type LoginResponse struct {
	AccessToken  string               `json:"accessToken"`
	RefreshToken string               `json:"refreshToken"`
	User         models.UserSanitized `json:"user"`
}

// Login handles user login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	user, err := h.Store.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Unauthorized(c, "Invalid email or password")
		} else {
			log.Printf("login: fetching user: %v", err)
			utils.InternalServerError(c, "Failed to log in")
		}
		return
	}

	if !user.CheckPassword(req.Password) {
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	accessToken, refreshTokenString, err := utils.GenerateTokens(user, h.Cfg)
	if err != nil {
		log.Printf("login: generating tokens: %v", err)
		utils.InternalServerError(c, "Failed to log in")
		return
	}

	// Store refresh token as the server-side session record
	refreshToken := models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshTokenString,
		ExpiresAt: time.Now().Add(time.Duration(h.Cfg.JWTRefreshExpirationHours) * time.Hour),
		IsRevoked: false,
	}
	if err := h.Store.CreateRefreshToken(&refreshToken); err != nil {
		log.Printf("login: storing refresh token: %v", err)
		utils.InternalServerError(c, "Failed to log in")
		return
	}

	h.setRefreshCookie(c, refreshTokenString, h.Cfg.JWTRefreshExpirationHours*60*60)

	utils.Success(c, "Login successful", LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         user.Sanitize(),
	})
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RefreshTokenResponse represents the response body for successful token refresh.
type RefreshTokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshToken handles refreshing an access token using a refresh token.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	// Prefer the HTTP-only cookie, fall back to the request body
	refreshTokenString, err := c.Cookie("refresh_token")
	if err != nil || refreshTokenString == "" {
		var req RefreshTokenRequest
		if !utils.BindAndValidate(c, &req) {
			return
		}
		refreshTokenString = req.RefreshToken
	}

	claims, err := utils.ValidateToken(refreshTokenString, h.Cfg.JWTRefreshSecret)
	if err != nil {
		utils.Unauthorized(c, "Invalid refresh token: "+err.Error())
		return
	}

	stored, err := h.Store.GetActiveRefreshToken(refreshTokenString, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Unauthorized(c, "Refresh token not found, expired, or revoked")
		} else {
			log.Printf("refresh: looking up token: %v", err)
			utils.InternalServerError(c, "Failed to refresh token")
		}
		return
	}

	user, err := h.Store.GetUser(claims.UserID)
	if err != nil {
		log.Printf("refresh: fetching user: %v", err)
		utils.InternalServerError(c, "Failed to refresh token")
		return
	}

	// Rotation: revoke the old token, issue and store a new pair
	if err := h.Store.RevokeRefreshToken(stored); err != nil {
		log.Printf("refresh: revoking token: %v", err)
		utils.InternalServerError(c, "Failed to refresh token")
		return
	}

	newAccessToken, newRefreshTokenString, err := utils.GenerateTokens(user, h.Cfg)
	if err != nil {
		log.Printf("refresh: generating tokens: %v", err)
		utils.InternalServerError(c, "Failed to refresh token")
		return
	}

	newRefreshToken := models.RefreshToken{
		UserID:    user.ID,
		Token:     newRefreshTokenString,
		ExpiresAt: time.Now().Add(time.Duration(h.Cfg.JWTRefreshExpirationHours) * time.Hour),
		IsRevoked: false,
	}
	if err := h.Store.CreateRefreshToken(&newRefreshToken); err != nil {
		log.Printf("refresh: storing token: %v", err)
		utils.InternalServerError(c, "Failed to refresh token")
		return
	}

	h.setRefreshCookie(c, newRefreshTokenString, h.Cfg.JWTRefreshExpirationHours*60*60)

	utils.Success(c, "Access token refreshed successfully", RefreshTokenResponse{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshTokenString,
	})
}

// LogoutRequest represents the request body for user logout.
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// Logout handles user logout by revoking the refresh token.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req LogoutRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	stored, err := h.Store.GetRefreshToken(req.RefreshToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Already invalid, which is acceptable for logout.
			utils.Success(c, "Logout successful", nil)
		} else {
			log.Printf("logout: looking up token: %v", err)
			utils.InternalServerError(c, "Failed to log out")
		}
		return
	}

	if err := h.Store.RevokeRefreshToken(stored); err != nil {
		log.Printf("logout: revoking token: %v", err)
		utils.InternalServerError(c, "Failed to log out")
		return
	}

	h.setRefreshCookie(c, "", -1)

	utils.Success(c, "Logout successful. Refresh token has been invalidated.", nil)
}

// GetCurrentUser handles fetching the currently authenticated user.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	user, err := h.Store.GetUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "User not found")
		} else {
			log.Printf("current user: %v", err)
			utils.InternalServerError(c, "Failed to fetch user")
		}
		return
	}

	utils.Success(c, "User fetched successfully", user.Sanitize())
}

// UpsertProfileRequest represents the request body for updating the
// caller's profile. All fields are optional; provided ones are merged.
type UpsertProfileRequest struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	DateOfBirth  *string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	PhoneNumber  *string `json:"phoneNumber"`
	Address      *string `json:"address"`
	ProfileImage *string `json:"profileImage"`
	Specialty    *string `json:"specialty"`
	BloodType    *string `json:"bloodType"`
	Allergies    *string `json:"allergies"`
}

// UpsertProfile merges the provided fields into the caller's profile
// through the store's atomic upsert.
func (h *AuthHandler) UpsertProfile(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req UpsertProfileRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	user, err := h.Store.GetUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "User not found")
		} else {
			log.Printf("upsert profile: fetching user: %v", err)
			utils.InternalServerError(c, "Failed to update profile")
		}
		return
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			utils.BadRequest(c, "Invalid dateOfBirth format, expected YYYY-MM-DD")
			return
		}
		user.DateOfBirth = &dob
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.ProfileImage != nil {
		user.ProfileImage = *req.ProfileImage
	}
	if req.Specialty != nil {
		user.Specialty = *req.Specialty
	}
	if req.BloodType != nil {
		user.BloodType = *req.BloodType
	}
	if req.Allergies != nil {
		user.Allergies = *req.Allergies
	}

	saved, err := h.Store.UpsertUser(user)
	if err != nil {
		log.Printf("upsert profile: %v", err)
		utils.InternalServerError(c, "Failed to update profile")
		return
	}

	utils.Success(c, "Profile updated successfully", saved.Sanitize())
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, value string, maxAge int) {
	c.SetCookie(
		"refresh_token",
		value,
		maxAge,
		"/",
		"",
		h.Cfg.Environment != "development",
		true,
	)
}
