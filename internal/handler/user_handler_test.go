package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	mid "github.com/dataria445/Monsta/internal/middleware"
	"github.com/dataria445/Monsta/internal/model"
	"github.com/dataria445/Monsta/pkg/config"
	"github.com/dataria445/Monsta/pkg/jwtutil"
	"github.com/dataria445/Monsta/pkg/storage"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAuth(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	e := newTestEcho()

	jwtUtil := jwtutil.NewJWTUtil(&config.JWTConfig{
		AccessSigningKey:  "test-access-secret",
		RefreshSigningKey: "test-refresh-secret",
		AccessExpiry:      time.Hour,
		RefreshExpiry:     24 * time.Hour,
	})
	store := storage.NewLocalStorage(t.TempDir())
	uploadCfg := &config.UploadConfig{FolderPrefix: "monsta", MaxFileSize: 5 * 1024 * 1024}

	NewUserHandler(db, jwtUtil, store).RegisterUser(
		e.Group("/web/user"),
		mid.AuthMiddleware(db, jwtUtil),
		mid.Upload(uploadCfg, "users").Fields(
			mid.FileField{Name: "avatar", MaxCount: 1},
			mid.FileField{Name: "coverImage", MaxCount: 1},
		))
	return e, db
}

func registerTestUser(t *testing.T, e *echo.Echo, username, email, password string) envelope {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("username", username))
	require.NoError(t, w.WriteField("email", email))
	require.NoError(t, w.WriteField("password", password))
	require.NoError(t, w.WriteField("fullname", "Test User"))
	fw, err := w.CreateFormFile("avatar", "avatar.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("avatar-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/web/user/register", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeEnvelope(t, rec)
}

type tokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func loginTestUser(t *testing.T, e *echo.Echo, email, password string) tokenPair {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/web/user/login",
		fmt.Sprintf(`{"email":%q,"password":%q}`, email, password))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	env := decodeEnvelope(t, rec)
	var pair tokenPair
	require.NoError(t, json.Unmarshal(env.Data, &pair))
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	return pair
}

func TestSendOtp(t *testing.T) {
	e, _ := setupAuth(t)

	rec := doJSON(e, http.MethodPost, "/web/user/send-otp", `{"phone":"12345"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OTP sent successfully", decodeEnvelope(t, rec).Message)
}

func TestRegister(t *testing.T) {
	e, db := setupAuth(t)

	env := registerTestUser(t, e, "Walter", "Walter@Example.com", "secret123")
	assert.Equal(t, "User registered successfully", env.Message)

	// Sensitive fields never leave the server
	assert.NotContains(t, string(env.Data), "password")
	assert.NotContains(t, string(env.Data), "refreshToken")

	var user model.User
	require.NoError(t, db.First(&user, "email = ?", "walter@example.com").Error)
	// Identifiers are normalized, the password is stored hashed
	assert.Equal(t, "walter", user.Username)
	assert.NotEqual(t, "secret123", user.Password)
	assert.Equal(t, "test-user", user.Slug)
	assert.True(t, strings.HasPrefix(user.Avatar, "/monsta/users/"))
}

func TestRegisterValidation(t *testing.T) {
	e, _ := setupAuth(t)

	// Missing fields
	rec := doJSON(e, http.MethodPost, "/web/user/register", `{"username":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "All fields are required", decodeError(t, rec).Message)

	// Avatar is mandatory
	rec = doJSON(e, http.MethodPost, "/web/user/register",
		`{"username":"x","email":"x@example.com","password":"pw","fullname":"X"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Avatar file is required", decodeError(t, rec).Message)
}

func TestRegisterDuplicate(t *testing.T) {
	e, _ := setupAuth(t)

	registerTestUser(t, e, "walter", "walter@example.com", "secret123")

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("username", "WALTER"))
	require.NoError(t, w.WriteField("email", "other@example.com"))
	require.NoError(t, w.WriteField("password", "secret123"))
	require.NoError(t, w.WriteField("fullname", "Someone Else"))
	fw, err := w.CreateFormFile("avatar", "a.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("x"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/web/user/register", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "User with email or username already exists", decodeError(t, rec).Message)
}

func TestLogin(t *testing.T) {
	e, _ := setupAuth(t)
	registerTestUser(t, e, "walter", "walter@example.com", "secret123")

	pair := loginTestUser(t, e, "walter@example.com", "secret123")
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	// By username works too
	rec := doJSON(e, http.MethodPost, "/web/user/login",
		`{"username":"WALTER","password":"secret123"}`)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(e, http.MethodPost, "/web/user/login",
		`{"email":"walter@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid user credentials", decodeError(t, rec).Message)

	rec = doJSON(e, http.MethodPost, "/web/user/login",
		`{"email":"ghost@example.com","password":"pw"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User does not exist", decodeError(t, rec).Message)

	rec = doJSON(e, http.MethodPost, "/web/user/login", `{"password":"pw"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginSetsCookies(t *testing.T) {
	e, _ := setupAuth(t)
	registerTestUser(t, e, "walter", "walter@example.com", "secret123")

	rec := doJSON(e, http.MethodPost, "/web/user/login",
		`{"email":"walter@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	names := map[string]bool{}
	for _, c := range cookies {
		names[c.Name] = true
		assert.True(t, c.HttpOnly, "cookie %s must be httpOnly", c.Name)
	}
	assert.True(t, names["accessToken"])
	assert.True(t, names["refreshToken"])
}

func TestRefreshRotation(t *testing.T) {
	e, _ := setupAuth(t)
	registerTestUser(t, e, "walter", "walter@example.com", "secret123")
	pair := loginTestUser(t, e, "walter@example.com", "secret123")

	rec := doJSON(e, http.MethodPost, "/web/user/refresh-token",
		fmt.Sprintf(`{"refreshToken":%q}`, pair.RefreshToken))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	env := decodeEnvelope(t, rec)
	var rotated tokenPair
	require.NoError(t, json.Unmarshal(env.Data, &rotated))
	assert.NotEmpty(t, rotated.RefreshToken)

	// The superseded token is rejected after rotation
	rec = doJSON(e, http.MethodPost, "/web/user/refresh-token",
		fmt.Sprintf(`{"refreshToken":%q}`, pair.RefreshToken))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Refresh token is expired or used", decodeError(t, rec).Message)

	// The rotated token still works
	rec = doJSON(e, http.MethodPost, "/web/user/refresh-token",
		fmt.Sprintf(`{"refreshToken":%q}`, rotated.RefreshToken))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRefreshValidation(t *testing.T) {
	e, _ := setupAuth(t)

	rec := doJSON(e, http.MethodPost, "/web/user/refresh-token", `{}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized request", decodeError(t, rec).Message)

	rec = doJSON(e, http.MethodPost, "/web/user/refresh-token",
		`{"refreshToken":"not-a-jwt"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid refresh token", decodeError(t, rec).Message)
}

func TestLogout(t *testing.T) {
	e, db := setupAuth(t)
	registerTestUser(t, e, "walter", "walter@example.com", "secret123")
	pair := loginTestUser(t, e, "walter@example.com", "secret123")

	req := httptest.NewRequest(http.MethodPost, "/web/user/logout", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var user model.User
	require.NoError(t, db.First(&user, "email = ?", "walter@example.com").Error)
	assert.Empty(t, user.RefreshToken)

	// Refreshing with the pre-logout token fails the stored-token comparison
	rec2 := doJSON(e, http.MethodPost, "/web/user/refresh-token",
		fmt.Sprintf(`{"refreshToken":%q}`, pair.RefreshToken))
	assert.Equal(t, http.StatusUnauthorized, rec2.Code)
}

func TestLogoutRequiresAuth(t *testing.T) {
	e, _ := setupAuth(t)

	rec := doJSON(e, http.MethodPost, "/web/user/logout", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestForgotAndResetPassword(t *testing.T) {
	e, db := setupAuth(t)
	registerTestUser(t, e, "walter", "walter@example.com", "secret123")

	rec := doJSON(e, http.MethodPost, "/web/user/forgot-password",
		`{"email":"walter@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	env := decodeEnvelope(t, rec)
	var data struct {
		ResetToken string `json:"resetToken"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.ResetToken)

	// Only the hash is persisted
	var user model.User
	require.NoError(t, db.First(&user, "email = ?", "walter@example.com").Error)
	assert.NotEqual(t, data.ResetToken, user.ForgotPasswordToken)
	require.NotNil(t, user.ForgotPasswordExpiry)

	rec = doJSON(e, http.MethodPost, "/web/user/reset-password",
		fmt.Sprintf(`{"token":%q,"newPassword":"fresh456"}`, data.ResetToken))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Password reset successfully", decodeEnvelope(t, rec).Message)

	loginTestUser(t, e, "walter@example.com", "fresh456")

	// A consumed token cannot be replayed
	rec = doJSON(e, http.MethodPost, "/web/user/reset-password",
		fmt.Sprintf(`{"token":%q,"newPassword":"again789"}`, data.ResetToken))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid or expired reset token", decodeError(t, rec).Message)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	e, db := setupAuth(t)
	registerTestUser(t, e, "walter", "walter@example.com", "secret123")

	rec := doJSON(e, http.MethodPost, "/web/user/forgot-password",
		`{"email":"walter@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	var data struct {
		ResetToken string `json:"resetToken"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))

	expired := time.Now().Add(-time.Minute)
	require.NoError(t, db.Model(&model.User{}).
		Where("email = ?", "walter@example.com").
		Update("forgot_password_expiry", expired).Error)

	rec = doJSON(e, http.MethodPost, "/web/user/reset-password",
		fmt.Sprintf(`{"token":%q,"newPassword":"fresh456"}`, data.ResetToken))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	e, _ := setupAuth(t)

	rec := doJSON(e, http.MethodPost, "/web/user/forgot-password",
		`{"email":"ghost@example.com"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found with this email", decodeError(t, rec).Message)

	rec = doJSON(e, http.MethodPost, "/web/user/forgot-password", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email is required", decodeError(t, rec).Message)
}

func TestUpdatePassword(t *testing.T) {
	e, _ := setupAuth(t)
	registerTestUser(t, e, "walter", "walter@example.com", "secret123")
	pair := loginTestUser(t, e, "walter@example.com", "secret123")

	update := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/web/user/update-password",
			strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	rec := update(`{"oldPassword":"wrong","newPassword":"fresh456"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Incorrect old password", decodeError(t, rec).Message)

	rec = update(`{"oldPassword":"secret123","newPassword":"fresh456"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Password updated successfully", decodeEnvelope(t, rec).Message)

	loginTestUser(t, e, "walter@example.com", "fresh456")
}
