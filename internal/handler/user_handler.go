package handler

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/dataria445/Monsta/internal/middleware"
	"github.com/dataria445/Monsta/internal/model"
	"github.com/dataria445/Monsta/pkg/apiutil"
	"github.com/dataria445/Monsta/pkg/jwtutil"
	"github.com/dataria445/Monsta/pkg/logger"
	"github.com/dataria445/Monsta/pkg/storage"
	"github.com/dataria445/Monsta/prometheus"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserHandler carries the web-facing auth surface: registration, login with
// refresh-token rotation, logout and the password recovery flow.
type UserHandler struct {
	db    *gorm.DB
	jwt   *jwtutil.JWTUtil
	store storage.Storage
}

func NewUserHandler(db *gorm.DB, jwtUtil *jwtutil.JWTUtil, store storage.Storage) *UserHandler {
	return &UserHandler{db: db, jwt: jwtUtil, store: store}
}

// RegisterUser wires the /web/user routes
func (h *UserHandler) RegisterUser(g *echo.Group, authMW, uploadMW echo.MiddlewareFunc) {
	g.POST("/send-otp", h.SendOtp)
	g.POST("/register", h.Register, uploadMW)
	g.POST("/login", h.Login)
	g.POST("/refresh-token", h.RefreshToken)
	g.POST("/logout", h.Logout, authMW)
	g.POST("/forgot-password", h.ForgotPassword)
	g.POST("/reset-password", h.ResetPassword)
	g.POST("/update-password", h.UpdatePassword, authMW)
}

// SendOtp acknowledges the request without dispatching anything. The
// delivery channel was never built out; the dashboard only needs the 200.
func (h *UserHandler) SendOtp(c echo.Context) error {
	return c.JSON(http.StatusOK,
		apiutil.NewResponse(http.StatusOK, echo.Map{}, "OTP sent successfully"))
}

func (h *UserHandler) Register(c echo.Context) error {
	log := logger.FromEcho(c)

	fields, err := bindFields(c)
	if err != nil {
		return apiutil.NewError(http.StatusBadRequest, "Invalid request body")
	}
	username := strings.TrimSpace(asString(fields["username"]))
	email := strings.TrimSpace(asString(fields["email"]))
	password := asString(fields["password"])
	fullname := strings.TrimSpace(asString(fields["fullname"]))

	if username == "" || email == "" || password == "" || fullname == "" {
		return apiutil.NewError(http.StatusBadRequest, "All fields are required")
	}
	if err := validate.Var(email, "email"); err != nil {
		return apiutil.NewError(http.StatusBadRequest, "Invalid email format")
	}

	var count int64
	err = liveScope(h.db.Model(&model.User{})).
		Where("username = ? OR email = ?", strings.ToLower(username), strings.ToLower(email)).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return apiutil.NewError(http.StatusConflict, "User with email or username already exists")
	}

	avatarFile := middleware.FormFile(c, "avatar")
	if avatarFile == nil {
		return apiutil.NewError(http.StatusBadRequest, "Avatar file is required")
	}
	avatar, err := h.saveUserFile(c, avatarFile)
	if err != nil {
		return apiutil.NewError(http.StatusBadRequest, "Failed to upload avatar")
	}
	coverImage := ""
	if coverFile := middleware.FormFile(c, "coverImage"); coverFile != nil {
		coverImage, err = h.saveUserFile(c, coverFile)
		if err != nil {
			return apiutil.NewError(http.StatusBadRequest, "Failed to upload cover image")
		}
	}

	user := model.User{
		Username:   username,
		Email:      email,
		Fullname:   fullname,
		Avatar:     avatar,
		CoverImage: coverImage,
		Gender:     asString(fields["gender"]),
		Phone:      asString(fields["phone"]),
		Address:    asString(fields["address"]),
		Slug:       model.MakeSlug(fullname),
	}
	if err := user.SetPassword(password); err != nil {
		return err
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := h.db.Create(&user).Error; err != nil {
		return err
	}

	prometheus.RegisterCounter.Inc()
	log.Info("user registered", zap.Uint("user_id", user.ID), zap.String("username", user.Username))
	return c.JSON(http.StatusCreated,
		apiutil.NewResponse(http.StatusCreated, &user, "User registered successfully"))
}

func (h *UserHandler) Login(c echo.Context) error {
	log := logger.FromEcho(c)

	fields, err := bindFields(c)
	if err != nil {
		return apiutil.NewError(http.StatusBadRequest, "Invalid request body")
	}
	email := strings.ToLower(strings.TrimSpace(asString(fields["email"])))
	username := strings.ToLower(strings.TrimSpace(asString(fields["username"])))
	password := asString(fields["password"])

	if password == "" || (email == "" && username == "") {
		return apiutil.NewError(http.StatusBadRequest, "Username/Email and password are required")
	}

	var user model.User
	query := liveScope(h.db)
	if email != "" {
		query = query.Where("email = ?", email)
	} else {
		query = query.Where("username = ?", username)
	}
	if err := query.First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			prometheus.RecordAuthError("unknown_user")
			return apiutil.NewError(http.StatusNotFound, "User does not exist")
		}
		return err
	}

	if !user.CheckPassword(password) {
		prometheus.RecordAuthError("bad_credentials")
		return apiutil.NewError(http.StatusUnauthorized, "Invalid user credentials")
	}

	accessToken, refreshToken, err := h.issueTokens(&user)
	if err != nil {
		return err
	}

	prometheus.LoginCounter.Inc()
	prometheus.ActiveSessions.Inc()
	log.Info("user logged in", zap.Uint("user_id", user.ID))

	setAuthCookies(c, accessToken, refreshToken)
	return c.JSON(http.StatusOK, apiutil.NewResponse(http.StatusOK, echo.Map{
		"user":         &user,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	}, "User logged in successfully"))
}

// RefreshToken rotates the refresh token. The stored-token comparison is
// what invalidates a superseded token after rotation or re-login.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	log := logger.FromEcho(c)

	incoming := ""
	if cookie, err := c.Cookie("refreshToken"); err == nil && cookie.Value != "" {
		incoming = cookie.Value
	}
	if incoming == "" {
		fields, err := bindFields(c)
		if err == nil {
			incoming = asString(fields["refreshToken"])
		}
	}
	if incoming == "" {
		prometheus.RecordAuthError("missing_refresh")
		return apiutil.NewError(http.StatusUnauthorized, "Unauthorized request")
	}

	claims, err := h.jwt.ValidateRefreshToken(incoming)
	if err != nil {
		prometheus.RecordAuthError("invalid_refresh")
		return apiutil.NewError(http.StatusUnauthorized, "Invalid refresh token")
	}

	var user model.User
	if err := h.db.First(&user, "id = ?", claims.UserID).Error; err != nil {
		prometheus.RecordAuthError("invalid_refresh")
		return apiutil.NewError(http.StatusUnauthorized, "Invalid refresh token")
	}
	if incoming != user.RefreshToken {
		prometheus.RecordAuthError("refresh_reuse")
		log.Warn("stale refresh token presented", zap.Uint("user_id", user.ID))
		return apiutil.NewError(http.StatusUnauthorized, "Refresh token is expired or used")
	}

	accessToken, refreshToken, err := h.issueTokens(&user)
	if err != nil {
		return err
	}

	prometheus.RefreshCounter.Inc()
	log.Info("access token refreshed", zap.Uint("user_id", user.ID))

	setAuthCookies(c, accessToken, refreshToken)
	return c.JSON(http.StatusOK, apiutil.NewResponse(http.StatusOK, echo.Map{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	}, "Access token refreshed successfully"))
}

func (h *UserHandler) Logout(c echo.Context) error {
	log := logger.FromEcho(c)
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return apiutil.NewError(http.StatusUnauthorized, "Unauthorized request")
	}

	if err := h.db.Model(user).Update("refresh_token", "").Error; err != nil {
		return err
	}

	prometheus.ActiveSessions.Dec()
	log.Info("user logged out", zap.Uint("user_id", user.ID))

	clearAuthCookies(c)
	return c.JSON(http.StatusOK,
		apiutil.NewResponse(http.StatusOK, echo.Map{}, "User logged out successfully"))
}

func (h *UserHandler) ForgotPassword(c echo.Context) error {
	log := logger.FromEcho(c)

	fields, err := bindFields(c)
	if err != nil {
		return apiutil.NewError(http.StatusBadRequest, "Invalid request body")
	}
	email := strings.ToLower(strings.TrimSpace(asString(fields["email"])))
	if email == "" {
		return apiutil.NewError(http.StatusBadRequest, "Email is required")
	}

	var user model.User
	if err := liveScope(h.db).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiutil.NewError(http.StatusNotFound, "User not found with this email")
		}
		return err
	}

	raw := make([]byte, 20)
	if _, err := rand.Read(raw); err != nil {
		return err
	}
	resetToken := hex.EncodeToString(raw)

	// Only the hash is stored; the plaintext goes back to the caller once
	hashed := sha256.Sum256([]byte(resetToken))
	expiry := time.Now().Add(15 * time.Minute)
	err = h.db.Model(&user).Updates(map[string]interface{}{
		"forgot_password_token":  hex.EncodeToString(hashed[:]),
		"forgot_password_expiry": expiry,
	}).Error
	if err != nil {
		return err
	}

	log.Info("reset token generated", zap.Uint("user_id", user.ID))
	return c.JSON(http.StatusOK, apiutil.NewResponse(http.StatusOK,
		echo.Map{"resetToken": resetToken}, "Reset token generated successfully"))
}

func (h *UserHandler) ResetPassword(c echo.Context) error {
	log := logger.FromEcho(c)

	fields, err := bindFields(c)
	if err != nil {
		return apiutil.NewError(http.StatusBadRequest, "Invalid request body")
	}
	token := asString(fields["token"])
	newPassword := asString(fields["newPassword"])
	if token == "" || newPassword == "" {
		return apiutil.NewError(http.StatusBadRequest, "Token and new password are required")
	}

	hashed := sha256.Sum256([]byte(token))
	var user model.User
	err = h.db.Where("forgot_password_token = ? AND forgot_password_expiry > ?",
		hex.EncodeToString(hashed[:]), time.Now()).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiutil.NewError(http.StatusBadRequest, "Invalid or expired reset token")
		}
		return err
	}

	if err := user.SetPassword(newPassword); err != nil {
		return err
	}
	err = h.db.Model(&user).Updates(map[string]interface{}{
		"password":               user.Password,
		"forgot_password_token":  "",
		"forgot_password_expiry": nil,
	}).Error
	if err != nil {
		return err
	}

	log.Info("password reset", zap.Uint("user_id", user.ID))
	return c.JSON(http.StatusOK,
		apiutil.NewResponse(http.StatusOK, echo.Map{}, "Password reset successfully"))
}

func (h *UserHandler) UpdatePassword(c echo.Context) error {
	log := logger.FromEcho(c)

	fields, err := bindFields(c)
	if err != nil {
		return apiutil.NewError(http.StatusBadRequest, "Invalid request body")
	}
	oldPassword := asString(fields["oldPassword"])
	newPassword := asString(fields["newPassword"])
	if oldPassword == "" || newPassword == "" {
		return apiutil.NewError(http.StatusBadRequest, "Old and new passwords are required")
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		return apiutil.NewError(http.StatusUnauthorized, "Authentication required")
	}

	if !user.CheckPassword(oldPassword) {
		return apiutil.NewError(http.StatusBadRequest, "Incorrect old password")
	}
	if err := user.SetPassword(newPassword); err != nil {
		return err
	}
	if err := h.db.Model(user).Update("password", user.Password).Error; err != nil {
		return err
	}

	log.Info("password updated", zap.Uint("user_id", user.ID))
	return c.JSON(http.StatusOK,
		apiutil.NewResponse(http.StatusOK, echo.Map{}, "Password updated successfully"))
}

func (h *UserHandler) issueTokens(user *model.User) (string, string, error) {
	accessToken, err := h.jwt.GenerateAccessToken(user.ID, user.Email, user.Username, user.Fullname)
	if err != nil {
		return "", "", err
	}
	refreshToken, err := h.jwt.GenerateRefreshToken(user.ID)
	if err != nil {
		return "", "", err
	}
	if err := h.db.Model(user).Update("refresh_token", refreshToken).Error; err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func (h *UserHandler) saveUserFile(c echo.Context, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	folder := middleware.UploadFolder(c)
	filename := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	path, err := h.store.Save(folder, filename, src)
	if err != nil {
		return "", err
	}
	prometheus.UploadCounter.WithLabelValues(folder).Inc()
	return path, nil
}

func setAuthCookies(c echo.Context, accessToken, refreshToken string) {
	c.SetCookie(&http.Cookie{
		Name: "accessToken", Value: accessToken,
		Path: "/", HttpOnly: true, Secure: true, SameSite: http.SameSiteNoneMode,
	})
	c.SetCookie(&http.Cookie{
		Name: "refreshToken", Value: refreshToken,
		Path: "/", HttpOnly: true, Secure: true, SameSite: http.SameSiteNoneMode,
	})
}

func clearAuthCookies(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name: "accessToken", Value: "", Path: "/", MaxAge: -1, HttpOnly: true, Secure: true,
	})
	c.SetCookie(&http.Cookie{
		Name: "refreshToken", Value: "", Path: "/", MaxAge: -1, HttpOnly: true, Secure: true,
	})
}
