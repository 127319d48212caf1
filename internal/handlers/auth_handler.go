package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/dommestudio/lash-studio-api/internal/config"
	"github.com/dommestudio/lash-studio-api/internal/httperr"
	"github.com/dommestudio/lash-studio-api/internal/middleware"
	"github.com/dommestudio/lash-studio-api/internal/models"
	"github.com/dommestudio/lash-studio-api/internal/recordstore"
)

// ======================================================
// HANDLER
// ======================================================

type AuthHandler struct {
	users *recordstore.Collection[models.User, *models.User]
	cfg   *config.Config
}

func NewAuthHandler(store recordstore.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		users: recordstore.NewCollection[models.User](store, recordstore.Users),
		cfg:   cfg,
	}
}

// ======================================================
// REQUESTS / RESPONSES
// ======================================================

type RegisterRequest struct {
	StudioName string `json:"studio_name" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Phone      string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID         string `json:"id"`
	StudioName string `json:"studio_name"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	PhotoURL   string `json:"photo_url,omitempty"`
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		StudioName: u.StudioName,
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		PhotoURL:   u.PhotoURL,
	}
}

// ======================================================
// REGISTER
// ======================================================

// Register cria a conta da dona do estúdio. Aplicação single-tenant:
// só existe um cadastro; o segundo é recusado.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	existing, err := h.users.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_check_users", "Erro ao verificar cadastro.")
		return
	}
	if len(existing) > 0 {
		httperr.Conflict(c, "studio_already_registered", "O estúdio já possui cadastro.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao criar cadastro.")
		return
	}

	user := &models.User{
		StudioName:   req.StudioName,
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Phone:        req.Phone,
		CreatedAt:    time.Now(),
	}

	saved, err := h.users.Save(c.Request.Context(), user)
	if err != nil {
		httperr.Internal(c, "failed_to_create_user", "Erro ao criar cadastro.")
		return
	}

	c.JSON(201, toUserResponse(saved))
}

// ======================================================
// LOGIN
// ======================================================

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	all, err := h.users.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_load_users", "Erro ao autenticar.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user *models.User
	for _, u := range all {
		if u.Email == email {
			user = u
			break
		}
	}
	if user == nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(req.Password),
	); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.ID,
		"exp": time.Now().Add(72 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	})

	signed, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		httperr.Internal(c, "failed_to_sign_token", "Erro ao autenticar.")
		return
	}

	c.JSON(200, gin.H{
		"token": signed,
		"user":  toUserResponse(user),
	})
}

// ======================================================
// PROFILE
// ======================================================

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	user, err := h.users.Get(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_user", "Erro ao carregar perfil.")
		return
	}
	if user == nil {
		httperr.NotFound(c, "user_not_found", "Usuária não encontrada.")
		return
	}

	c.JSON(200, toUserResponse(user))
}

type UpdateProfileRequest struct {
	StudioName string `json:"studio_name"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	PhotoURL   string `json:"photo_url"`
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	user, err := h.users.Get(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_user", "Erro ao carregar perfil.")
		return
	}
	if user == nil {
		httperr.NotFound(c, "user_not_found", "Usuária não encontrada.")
		return
	}

	if req.StudioName != "" {
		user.StudioName = req.StudioName
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.PhotoURL != "" {
		user.PhotoURL = req.PhotoURL
	}

	saved, err := h.users.Save(c.Request.Context(), user)
	if err != nil {
		httperr.Internal(c, "failed_to_update_user", "Erro ao atualizar perfil.")
		return
	}

	c.JSON(200, toUserResponse(saved))
}
