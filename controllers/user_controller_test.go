package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopress/gopress/models"
	"github.com/gopress/gopress/utils"
)

func TestUserRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)

	w := doJSON(r, http.MethodPost, "/api/register", "", map[string]string{
		"username": "newuser",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	token, ok := body["token"].(string)
	require.True(t, ok)
	claims, err := utils.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "newuser", claims.Username)
	assert.Equal(t, models.RoleUser, claims.Role)

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.NotContains(t, user, "password")
	assert.NotContains(t, w.Body.String(), "secret123")

	// The stored password is a bcrypt hash, never the plaintext.
	var stored models.User
	require.NoError(t, db.Where("username = ?", "newuser").First(&stored).Error)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, utils.CheckPassword(stored.Password, "secret123"))

	w = doJSON(r, http.MethodPost, "/api/login", "", map[string]string{
		"username": "newuser",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decodeBody(t, w), "token")
}

func TestUserRegisterDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	createTestUser(t, db, "taken", models.RoleUser)

	w := doJSON(r, http.MethodPost, "/api/register", "", map[string]string{
		"username": "taken",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "username already exists", decodeBody(t, w)["message"])
}

func TestUserLoginRejectsBadCredentials(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	createTestUser(t, db, "someone", models.RoleUser)

	w := doJSON(r, http.MethodPost, "/api/login", "", map[string]string{
		"username": "someone",
		"password": "wrongpass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/api/login", "", map[string]string{
		"username": "nobody",
		"password": "whatever1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserReadNeverSerializesPassword(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	user := createTestUser(t, db, "visible", models.RoleUser)

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/api/users/%d", user.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "visible", body["username"])
	assert.NotContains(t, body, "password")
}

func TestUserListRejectsUnknownSortBy(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	createTestUser(t, db, "someone", models.RoleUser)

	w := doJSON(r, http.MethodGet, "/api/users?sortBy=evil", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid sortBy value", decodeBody(t, w)["message"])

	// A whitelisted column still works.
	w = doJSON(r, http.MethodGet, "/api/users?sortBy=username", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserReadMissingIs404(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)

	w := doJSON(r, http.MethodGet, "/api/users/4242", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No user found", decodeBody(t, w)["message"])
}
