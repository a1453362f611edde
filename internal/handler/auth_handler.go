package handler

import (
	"errors"
	"movieclub_api/internal/service"
	"movieclub_api/model"
	errorHandler "movieclub_api/pkg/error"
	"movieclub_api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type IAuthHandler interface {
	Login(c *fiber.Ctx) error
}

type AuthHandler struct {
	authService service.IAuthService
}

func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

//------------------------------------------
//------------------------------------------

// Login godoc
//
//	@Summary		Login
//	@Description	verify username/password and issue a bearer token.
//	@Tags			Auth
//	@Param			credentials	body		model.LoginReq	true	"credentials"
//	@Success		200			{object}	response.ResponseOKWithDataModel
//	@Failure		400,401,500	{object}	response.ResponseErrorModel
//	@Router			/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req model.LoginReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	res, err := h.authService.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return response.ResponseError(c, response.UserPassNotMatch, fiber.StatusUnauthorized)
		}
		errorHandler.SaveError(err.Error(), err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res)
}
