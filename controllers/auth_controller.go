package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/SineMag/Eatery/configs"
	"github.com/SineMag/Eatery/entity"
	"github.com/SineMag/Eatery/pkg/resp"
	"github.com/SineMag/Eatery/repository"
	"github.com/SineMag/Eatery/utils"
)

type RegisterRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=6"`
	Name          string `json:"name" binding:"required"`
	Surname       string `json:"surname" binding:"required"`
	ContactNumber string `json:"contactNumber"`
	Address       string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name          *string `json:"name"`
	Surname       *string `json:"surname"`
	ContactNumber *string `json:"contactNumber"`
	Address       *string `json:"address"`
	CardNumber    *string `json:"cardNumber"`
	CardExpiry    *string `json:"cardExpiry"`
	CardCVV       *string `json:"cardCVV"`
}

type AuthController struct {
	Repo *repository.UserRepository
	Cfg  *configs.Config
}

func NewAuthController(repo *repository.UserRepository, cfg *configs.Config) *AuthController {
	return &AuthController{Repo: repo, Cfg: cfg}
}

func userView(u *entity.User) gin.H {
	return gin.H{
		"id": u.ID, "email": u.Email, "name": u.Name, "surname": u.Surname,
		"contactNumber": u.ContactNumber, "address": u.Address, "role": u.Role,
	}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	email := strings.ToLower(req.Email)
	count, err := a.Repo.CountByEmail(email)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if count > 0 {
		resp.BadRequest(c, "email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	user := entity.User{
		Email:         email,
		Password:      string(hashed),
		Name:          req.Name,
		Surname:       req.Surname,
		ContactNumber: req.ContactNumber,
		Address:       req.Address,
		Role:          entity.RoleCustomer,
	}
	if err := a.Repo.Create(&user); err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, userView(&user))
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Repo.FindByEmail(strings.ToLower(req.Email))
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role, a.Cfg.JWTSecret, a.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "user": userView(user)})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Repo.FindByID(utils.CurrentUserID(c))
	if err != nil {
		resp.BadRequest(c, "user not found")
		return
	}
	resp.OK(c, userView(user))
}

// PATCH /auth/me
func (a *AuthController) UpdateMe(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Surname != nil {
		updates["surname"] = *req.Surname
	}
	if req.ContactNumber != nil {
		updates["contact_number"] = *req.ContactNumber
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.CardNumber != nil {
		updates["card_number"] = *req.CardNumber
	}
	if req.CardExpiry != nil {
		updates["card_expiry"] = *req.CardExpiry
	}
	if req.CardCVV != nil {
		updates["card_cvv"] = *req.CardCVV
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	userID := utils.CurrentUserID(c)
	if err := a.Repo.Update(userID, updates); err != nil {
		resp.ServerError(c, err)
		return
	}

	user, err := a.Repo.FindByID(userID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, userView(user))
}
