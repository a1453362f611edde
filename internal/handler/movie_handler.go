package handler

import (
	"movieclub_api/internal/service"
	errorHandler "movieclub_api/pkg/error"
	"movieclub_api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type IMovieHandler interface {
	GetAllMovies(c *fiber.Ctx) error
	GetMovieByTitle(c *fiber.Ctx) error
	GetGenreByName(c *fiber.Ctx) error
	GetDirectorByName(c *fiber.Ctx) error
}

type MovieHandler struct {
	movieService service.IMovieService
}

func NewMovieHandler(movieService service.IMovieService) *MovieHandler {
	return &MovieHandler{
		movieService: movieService,
	}
}

//------------------------------------------
//------------------------------------------

// GetAllMovies godoc
//
//	@Summary		All Movies
//	@Description	list every movie in the catalog.
//	@Tags			Movie
//	@Success		200		{object}	response.ResponseOKWithDataModel
//	@Failure		401,500	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/movies [get]
func (h *MovieHandler) GetAllMovies(c *fiber.Ctx) error {
	movies, err := h.movieService.GetAllMovies(c.Context())
	if err != nil {
		errorHandler.SaveError(err.Error(), err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, movies)
}

// GetMovieByTitle godoc
//
//	@Summary		Get Movie
//	@Description	get one movie by title.
//	@Tags			Movie
//	@Param			title	path		string	true	"title"
//	@Success		200			{object}	response.ResponseOKWithDataModel
//	@Failure		401,404,500	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/movies/:title [get]
func (h *MovieHandler) GetMovieByTitle(c *fiber.Ctx) error {
	title := c.Params("title", "")
	if title == "" || title == ":title" {
		return response.ResponseError(c, "Invalid title", fiber.StatusBadRequest)
	}

	movie, err := h.movieService.GetMovieByTitle(c.Context(), title)
	if err != nil {
		errorHandler.SaveError(err.Error(), err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	if movie == nil {
		return response.ResponseError(c, response.MovieNotFound, fiber.StatusNotFound)
	}
	return response.ResponseOKWithData(c, movie)
}

// GetGenreByName godoc
//
//	@Summary		Get Genre
//	@Description	get the genre data of the first movie matching the genre name.
//	@Tags			Movie
//	@Param			genreName	path		string	true	"genreName"
//	@Success		200			{object}	response.ResponseOKWithDataModel
//	@Failure		401,404,500	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/movies/genre/:genreName [get]
func (h *MovieHandler) GetGenreByName(c *fiber.Ctx) error {
	genreName := c.Params("genreName", "")
	if genreName == "" || genreName == ":genreName" {
		return response.ResponseError(c, "Invalid genreName", fiber.StatusBadRequest)
	}

	genre, err := h.movieService.GetGenreByName(c.Context(), genreName)
	if err != nil {
		errorHandler.SaveError(err.Error(), err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	if genre == nil {
		return response.ResponseError(c, response.GenreNotFound, fiber.StatusNotFound)
	}
	return response.ResponseOKWithData(c, genre)
}

// GetDirectorByName godoc
//
//	@Summary		Get Director
//	@Description	get the director data of the first movie matching the director name.
//	@Tags			Movie
//	@Param			directorName	path		string	true	"directorName"
//	@Success		200			{object}	response.ResponseOKWithDataModel
//	@Failure		401,404,500	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/movies/directors/:directorName [get]
func (h *MovieHandler) GetDirectorByName(c *fiber.Ctx) error {
	directorName := c.Params("directorName", "")
	if directorName == "" || directorName == ":directorName" {
		return response.ResponseError(c, "Invalid directorName", fiber.StatusBadRequest)
	}

	director, err := h.movieService.GetDirectorByName(c.Context(), directorName)
	if err != nil {
		errorHandler.SaveError(err.Error(), err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	if director == nil {
		return response.ResponseError(c, response.DirectorNotFound, fiber.StatusNotFound)
	}
	return response.ResponseOKWithData(c, director)
}
