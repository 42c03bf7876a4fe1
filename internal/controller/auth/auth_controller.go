package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nandraak/siakad/internal/controller"
	"github.com/nandraak/siakad/internal/dto"
	"github.com/nandraak/siakad/internal/middleware"
	"github.com/nandraak/siakad/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register godoc
// @Summary Register an account by NIM
// @Description Creates an account. Role and email credential are derived from the NIM prefix (99... is a lecturer).
// @Tags Auth
// @Accept json
// @Produce json
// @Param registration body dto.RegisterRequest true "Account data"
// @Success 201 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failure or duplicate NIM"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	profile, err := c.authService.Register(ctx.Request.Context(), req)
	if err != nil {
		log.Warn().Err(err).Str("nim", req.NIM).Msg("Register failed")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, profile)
}

// Login godoc
// @Summary Login with NIM and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "NIM and password"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse "Unknown NIM or wrong password"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		log.Warn().Str("nim", req.NIM).Msg("Login failed")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Profile godoc
// @Summary Get the caller's profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /auth/profile [get]
func (c *AuthController) Profile(ctx *gin.Context) {
	nim := ctx.GetString(middleware.CtxNIM)
	profile, err := c.authService.Profile(ctx.Request.Context(), nim)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update the caller's profile fields
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body dto.ProfileUpdateRequest true "Profile fields"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /auth/profile [put]
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	var req dto.ProfileUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	nim := ctx.GetString(middleware.CtxNIM)
	profile, err := c.authService.UpdateProfile(ctx.Request.Context(), nim, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}
