package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/yeremiapane/bistro-pos/domain"
	"github.com/yeremiapane/bistro-pos/models"
	"github.com/yeremiapane/bistro-pos/repository"
	"github.com/yeremiapane/bistro-pos/services"
	"github.com/yeremiapane/bistro-pos/utils"
)

type UserController struct {
	Users    repository.UserRepository
	Registry *services.CodeRegistry
}

func NewUserController(users repository.UserRepository, registry *services.CodeRegistry) *UserController {
	return &UserController{Users: users, Registry: registry}
}

// Register user baru. Role dikirim sebagai code USER_ROLE, disimpan sebagai id.
func (uc *UserController) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role" binding:"required"` // ADMIN, CASHIER, KITCHEN, DRIVER
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	roleID, err := uc.Registry.Resolve(domain.CodeTypeUserRole, req.Role)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	user := models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashed),
		RoleID:    roleID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uc.Users.Create(&user); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New user registered: %s (role=%s)", user.Email, req.Role)
	utils.RespondJSON(c, http.StatusCreated, "User registered", gin.H{
		"user_id": user.ID,
	})
}

// Login user -> return JWT dengan role code di claims
func (uc *UserController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user, err := uc.Users.FindByEmail(input.Email)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if user == nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	roleRef, err := uc.Registry.ReverseResolve(user.RoleID)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, roleRef.Code)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("User logged in: %s (role=%s)", user.Email, roleRef.Code)
	utils.RespondJSON(c, http.StatusOK, "Login success", gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  roleRef.Code,
		},
	})
}
