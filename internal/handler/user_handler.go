package handler

import (
	"errors"
	"fmt"
	"movieclub_api/internal/service"
	"movieclub_api/model"
	errorHandler "movieclub_api/pkg/error"
	"movieclub_api/pkg/response"
	"movieclub_api/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

type IUserHandler interface {
	GetAllUsers(c *fiber.Ctx) error
	GetUser(c *fiber.Ctx) error
	CreateUser(c *fiber.Ctx) error
	UpdateUser(c *fiber.Ctx) error
	AddFavoriteMovie(c *fiber.Ctx) error
	RemoveFavoriteMovie(c *fiber.Ctx) error
	RemoveUser(c *fiber.Ctx) error
}

type UserHandler struct {
	userService service.IUserService
}

func NewUserHandler(userService service.IUserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

//------------------------------------------
//------------------------------------------

// GetAllUsers godoc
//
//	@Summary		All Users
//	@Description	list every registered user.
//	@Tags			User
//	@Success		200		{object}	response.ResponseOKWithDataModel
//	@Failure		401,500	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/users [get]
func (h *UserHandler) GetAllUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetAllUsers(c.Context())
	if err != nil {
		errorHandler.SaveError(err.Error(), err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, users)
}

// GetUser godoc
//
//	@Summary		Get User
//	@Description	get one user by username.
//	@Tags			User
//	@Param			username	path		string	true	"username"
//	@Success		200			{object}	response.ResponseOKWithDataModel
//	@Failure		401,404,500	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/users/:username [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	username := c.Params("username", "")
	if username == "" || username == ":username" {
		return response.ResponseError(c, "Invalid username", fiber.StatusBadRequest)
	}

	user, err := h.userService.GetUser(c.Context(), username)
	if err != nil {
		errorHandler.SaveError(err.Error(), err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	if user == nil {
		return response.ResponseError(c, response.UserNotFound, fiber.StatusNotFound)
	}
	return response.ResponseOKWithData(c, user)
}

// CreateUser godoc
//
//	@Summary		Register User
//	@Description	register a new user, username must be unique.
//	@Tags			User
//	@Param			user	body		model.CreateUserReq	true	"user data"
//	@Success		201		{object}	response.ResponseOKWithDataModel
//	@Failure		400,500	{object}	response.ResponseErrorModel
//	@Failure		422		{object}	response.ResponseValidationErrorModel
//	@Router			/users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req model.CreateUserReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	if validationErrors := validation.ValidateCreateUser(&req); len(validationErrors) > 0 {
		return response.ResponseValidationError(c, validationErrors)
	}

	user, err := h.userService.CreateUser(c.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameAlreadyExist) {
			return response.ResponseError(c, fmt.Sprintf("%s already exists", req.Username), fiber.StatusBadRequest)
		}
		errorHandler.SaveError(err.Error(), err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseCreated(c, user)
}

// UpdateUser godoc
//
//	@Summary		Update User
//	@Description	replace the profile fields of an existing user.
//	@Tags			User
//	@Param			username	path		string				true	"username"
//	@Param			user		body		model.UpdateUserReq	true	"user data"
//	@Success		200			{object}	response.ResponseOKWithDataModel
//	@Failure		400,401,404,500	{object}	response.ResponseErrorModel
//	@Failure		422			{object}	response.ResponseValidationErrorModel
//	@Security		BearerAuth
//	@Router			/users/:username [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	username := c.Params("username", "")
	if username == "" || username == ":username" {
		return response.ResponseError(c, "Invalid username", fiber.StatusBadRequest)
	}

	var req model.UpdateUserReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	if validationErrors := validation.ValidateUpdateUser(&req); len(validationErrors) > 0 {
		return response.ResponseValidationError(c, validationErrors)
	}

	user, err := h.userService.UpdateUser(c.Context(), username, &req)
	if err != nil {
		errorHandler.SaveError(err.Error(), err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	if user == nil {
		return response.ResponseError(c, fmt.Sprintf("%s was not found", username), fiber.StatusNotFound)
	}
	return response.ResponseOKWithData(c, user)
}

// AddFavoriteMovie godoc
//
//	@Summary		Add Favorite
//	@Description	append a movie id to the user's favorites.
//	@Tags			User
//	@Param			username	path		string	true	"username"
//	@Param			movieId		path		string	true	"movieId"
//	@Success		200			{object}	response.ResponseOKWithDataModel
//	@Failure		400,401,404,500	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/users/:username/movies/:movieId [post]
func (h *UserHandler) AddFavoriteMovie(c *fiber.Ctx) error {
	username := c.Params("username", "")
	if username == "" || username == ":username" {
		return response.ResponseError(c, "Invalid username", fiber.StatusBadRequest)
	}
	movieId := c.Params("movieId", "")
	if movieId == "" || movieId == ":movieId" {
		return response.ResponseError(c, "Invalid movieId", fiber.StatusBadRequest)
	}

	user, err := h.userService.AddFavoriteMovie(c.Context(), username, movieId)
	if err != nil {
		errorHandler.SaveError(err.Error(), err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	if user == nil {
		return response.ResponseError(c, response.UserNotFound, fiber.StatusNotFound)
	}
	return response.ResponseOKWithData(c, user)
}

// RemoveFavoriteMovie godoc
//
//	@Summary		Remove Favorite
//	@Description	remove a movie id from the user's favorites, no-op when absent.
//	@Tags			User
//	@Param			username	path		string	true	"username"
//	@Param			movieId		path		string	true	"movieId"
//	@Success		200			{object}	response.ResponseOKWithDataModel
//	@Failure		400,401,404,500	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/users/:username/movies/:movieId [delete]
func (h *UserHandler) RemoveFavoriteMovie(c *fiber.Ctx) error {
	username := c.Params("username", "")
	if username == "" || username == ":username" {
		return response.ResponseError(c, "Invalid username", fiber.StatusBadRequest)
	}
	movieId := c.Params("movieId", "")
	if movieId == "" || movieId == ":movieId" {
		return response.ResponseError(c, "Invalid movieId", fiber.StatusBadRequest)
	}

	user, err := h.userService.RemoveFavoriteMovie(c.Context(), username, movieId)
	if err != nil {
		errorHandler.SaveError(err.Error(), err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	if user == nil {
		return response.ResponseError(c, response.UserNotFound, fiber.StatusNotFound)
	}
	return response.ResponseOKWithData(c, user)
}

// RemoveUser godoc
//
//	@Summary		Remove User
//	@Description	delete a user by username.
//	@Tags			User
//	@Param			username	path		string	true	"username"
//	@Success		200			{object}	response.ResponseOKModel
//	@Failure		400,401,404,500	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/users/:username [delete]
func (h *UserHandler) RemoveUser(c *fiber.Ctx) error {
	username := c.Params("username", "")
	if username == "" || username == ":username" {
		return response.ResponseError(c, "Invalid username", fiber.StatusBadRequest)
	}

	user, err := h.userService.RemoveUser(c.Context(), username)
	if err != nil {
		errorHandler.SaveError(err.Error(), err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	if user == nil {
		return response.ResponseError(c, fmt.Sprintf("%s was not found", username), fiber.StatusNotFound)
	}
	return response.ResponseOK(c, fmt.Sprintf("%s was deleted.", username))
}
