package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopress/gopress/models"
)

func testPostBody(title string, categoryID uint) map[string]interface{} {
	return map[string]interface{}{
		"title":           title,
		"description":     "a description",
		"content":         "<p>some content</p>",
		"read_time":       5,
		"postsCategoryId": categoryID,
	}
}

func TestPostCreateDerivesSlug(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	author := createTestUser(t, db, "author", models.RoleUser)
	category := models.PostCategory{Name: "tech"}
	require.NoError(t, db.Create(&category).Error)

	w := doJSON(r, http.MethodPost, fmt.Sprintf("/api/posts/%d", author.ID), bearerToken(t, author),
		testPostBody("Hello World From Go", category.ID))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, "hello-world-from-go", body["slug"])
	assert.EqualValues(t, author.ID, body["userId"])

	var stored models.Post
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, "hello-world-from-go", stored.Slug)
}

func TestPostCreateRequiresTitleAndContent(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	author := createTestUser(t, db, "author", models.RoleUser)

	w := doJSON(r, http.MethodPost, fmt.Sprintf("/api/posts/%d", author.ID), bearerToken(t, author),
		map[string]interface{}{"title": "only a title", "postsCategoryId": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w), "message")
}

func TestPostCreateRequiresAuth(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)

	w := doJSON(r, http.MethodPost, "/api/posts/1", "", testPostBody("nope", 1))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPostReadBySlugHidesPassword(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	author := createTestUser(t, db, "author", models.RoleUser)
	category := models.PostCategory{Name: "tech"}
	require.NoError(t, db.Create(&category).Error)

	w := doJSON(r, http.MethodPost, fmt.Sprintf("/api/posts/%d", author.ID), bearerToken(t, author),
		testPostBody("Readable Post", category.ID))
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/posts/readable-post", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok, "expected embedded user object")
	assert.Equal(t, "author", user["username"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, w.Body.String(), "password123")
}

func TestPostReadMissingSlugIs404(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)

	w := doJSON(r, http.MethodGet, "/api/posts/never-written", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No post found", decodeBody(t, w)["message"])
}

func TestPostUpdateMissingIs404(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	author := createTestUser(t, db, "author", models.RoleUser)

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/api/posts/9999/%d", author.ID), bearerToken(t, author),
		testPostBody("whatever", 1))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No post found", decodeBody(t, w)["message"])
}

func TestPostUpdateRecomputesSlug(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	author := createTestUser(t, db, "author", models.RoleUser)
	category := models.PostCategory{Name: "tech"}
	require.NoError(t, db.Create(&category).Error)

	w := doJSON(r, http.MethodPost, fmt.Sprintf("/api/posts/%d", author.ID), bearerToken(t, author),
		testPostBody("First Title", category.ID))
	require.Equal(t, http.StatusOK, w.Code)
	postID := decodeBody(t, w)["id"]

	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/posts/%v/%d", postID, author.ID), bearerToken(t, author),
		testPostBody("Second Title", category.ID))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "second-title", decodeBody(t, w)["slug"])
}

func TestPostRemoveOwnership(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	owner := createTestUser(t, db, "owner", models.RoleUser)
	intruder := createTestUser(t, db, "intruder", models.RoleUser)
	category := models.PostCategory{Name: "tech"}
	require.NoError(t, db.Create(&category).Error)

	w := doJSON(r, http.MethodPost, fmt.Sprintf("/api/posts/%d", owner.ID), bearerToken(t, owner),
		testPostBody("Owned Post", category.ID))
	require.Equal(t, http.StatusOK, w.Code)
	postID := decodeBody(t, w)["id"]

	// A different user cannot delete it.
	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/posts/%v/%d", postID, intruder.ID), bearerToken(t, intruder), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "You are not the owner", decodeBody(t, w)["message"])

	// The owner can.
	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/posts/%v/%d", postID, owner.ID), bearerToken(t, owner), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestPostRemoveByAdmin(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	owner := createTestUser(t, db, "owner", models.RoleUser)
	admin := createTestUser(t, db, "admin", models.RoleAdmin)
	category := models.PostCategory{Name: "tech"}
	require.NoError(t, db.Create(&category).Error)

	w := doJSON(r, http.MethodPost, fmt.Sprintf("/api/posts/%d", owner.ID), bearerToken(t, owner),
		testPostBody("Admin Deletable", category.ID))
	require.Equal(t, http.StatusOK, w.Code)
	postID := decodeBody(t, w)["id"]

	// Regular users are rejected by the role check.
	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/admin/posts/%v", postID), bearerToken(t, owner), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/admin/posts/%v", postID), bearerToken(t, admin), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	var count int64
	db.Model(&models.Post{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestPostListEnvelope(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	author := createTestUser(t, db, "author", models.RoleUser)
	category := models.PostCategory{Name: "tech"}
	require.NoError(t, db.Create(&category).Error)

	for i := 1; i <= 12; i++ {
		post := models.Post{
			Title:           fmt.Sprintf("Post %d", i),
			Slug:            fmt.Sprintf("post-%d", i),
			Content:         "content",
			UserID:          author.ID,
			PostsCategoryID: category.ID,
		}
		require.NoError(t, db.Create(&post).Error)
	}

	w := doJSON(r, http.MethodGet, "/api/posts?page=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.EqualValues(t, 2, body["totalPages"])
	assert.EqualValues(t, 2, body["currentPage"])
	assert.EqualValues(t, 12, body["count"])
	data, ok := body["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 2)
}

func TestPostSearchRejectsUnknownSortBy(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)

	w := doJSON(r, http.MethodGet, "/api/search-posts?title=go&sortBy=evil", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid sortBy value", decodeBody(t, w)["message"])
}

func TestCategoryAndVipFeedsOmitCategoryID(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	author := createTestUser(t, db, "author", models.RoleUser)
	category := models.PostCategory{Name: "tech"}
	require.NoError(t, db.Create(&category).Error)

	body := testPostBody("Feed Post", category.ID)
	body["vip"] = true
	w := doJSON(r, http.MethodPost, fmt.Sprintf("/api/posts/%d", author.ID), bearerToken(t, author), body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	for _, path := range []string{fmt.Sprintf("/api/category-posts/%d", category.ID), "/api/vip-posts"} {
		w = doJSON(r, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var items []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
		require.Len(t, items, 1, path)
		assert.Equal(t, "Feed Post", items[0]["title"])
		assert.NotContains(t, items[0], "postsCategoryId", path)
	}

	// The regular listing keeps the column.
	w = doJSON(r, http.MethodGet, "/api/posts", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Contains(t, data[0].(map[string]interface{}), "postsCategoryId")
}

func TestPostCreateSanitizesContent(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	author := createTestUser(t, db, "author", models.RoleUser)
	category := models.PostCategory{Name: "tech"}
	require.NoError(t, db.Create(&category).Error)

	body := testPostBody("Script Post", category.ID)
	body["content"] = `<p>fine</p><script>alert("x")</script>`
	w := doJSON(r, http.MethodPost, fmt.Sprintf("/api/posts/%d", author.ID), bearerToken(t, author), body)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Post
	require.NoError(t, db.First(&stored).Error)
	assert.False(t, strings.Contains(stored.Content, "<script>"))
	assert.Contains(t, stored.Content, "<p>fine</p>")
}
