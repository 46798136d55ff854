package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gopress/gopress/models"
	"github.com/gopress/gopress/repository"
	"github.com/gopress/gopress/utils"
)

// UserController serves registration, login and the user CRUD endpoints.
type UserController struct {
	users repository.UserRepository
}

// NewUserController creates a UserController over the given store handle.
func NewUserController(db *gorm.DB) *UserController {
	return &UserController{users: repository.NewUserRepository(db)}
}

// Register creates a local account with a bcrypt-hashed password.
func (u *UserController) Register(ctx *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required,min=3,max=64"`
		Password string `json:"password" binding:"required,min=6,max=64"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, "invalid request payload")
		return
	}

	username := strings.TrimSpace(req.Username)
	existing, err := u.users.FindByUsername(ctx.Request.Context(), username)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if existing != nil {
		utils.Message(ctx, http.StatusConflict, "username already exists")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}

	user := models.User{Username: username, Password: hash, Role: models.RoleUser}
	if err := u.users.Create(ctx.Request.Context(), &user); err != nil {
		utils.InternalError(ctx, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.Role, 72*time.Hour)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Login verifies credentials and issues a JWT carrying id, username and role.
func (u *UserController) Login(ctx *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, "invalid request payload")
		return
	}

	user, err := u.users.FindByUsername(ctx.Request.Context(), req.Username)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if user == nil || !utils.CheckPassword(user.Password, req.Password) {
		utils.Message(ctx, http.StatusUnauthorized, "invalid username or password")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.Role, 72*time.Hour)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Read returns one user; the password never serializes.
func (u *UserController) Read(ctx *gin.Context) {
	userID, ok := paramUint(ctx, "userId")
	if !ok {
		utils.BadRequest(ctx, "invalid user id")
		return
	}

	user, err := u.users.FindByID(ctx.Request.Context(), userID)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if user == nil {
		utils.NotFound(ctx, "No user found")
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// List returns users paginated, newest first.
func (u *UserController) List(ctx *gin.Context) {
	q := parsePageQuery(ctx, defaultListLimit)

	users, count, err := u.users.List(ctx.Request.Context(), q)
	if err != nil {
		listError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, utils.ListResponse{
		Data:        users,
		TotalPages:  repository.TotalPages(count, q.Limit),
		CurrentPage: q.Page,
	})
}

// Update lets a user change their own username and password. Full-replace,
// like the rest of the API.
func (u *UserController) Update(ctx *gin.Context) {
	userID, ok := paramUint(ctx, "userId")
	if !ok {
		utils.BadRequest(ctx, "invalid user id")
		return
	}
	requesterID, _ := getUserID(ctx)
	if requesterID != userID && !isAdmin(ctx) {
		utils.BadRequest(ctx, "You are not the owner")
		return
	}

	var req struct {
		Username string `json:"username" binding:"required,min=3,max=64"`
		Password string `json:"password" binding:"required,min=6,max=64"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, "invalid request payload")
		return
	}

	user, err := u.users.FindByID(ctx.Request.Context(), userID)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if user == nil {
		utils.NotFound(ctx, "No user found")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	user.Username = strings.TrimSpace(req.Username)
	user.Password = hash

	if err := u.users.Update(ctx.Request.Context(), user); err != nil {
		utils.InternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// Remove deletes a user. Admin only; wired behind AdminRequired.
func (u *UserController) Remove(ctx *gin.Context) {
	userID, ok := paramUint(ctx, "userId")
	if !ok {
		utils.BadRequest(ctx, "invalid user id")
		return
	}

	if err := u.users.Delete(ctx.Request.Context(), userID); err != nil {
		utils.InternalError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
