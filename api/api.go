package api

import (
	"errors"
	"log"
	"movieclub_api/api/middleware"
	"movieclub_api/configs"
	_ "movieclub_api/docs"
	"movieclub_api/internal/handler"
	"movieclub_api/pkg/response"
	"os"
	"slices"
	"strings"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
)

var router *fiber.App

func InitRouter(userHandler *handler.UserHandler, movieHandler *handler.MovieHandler, authHandler *handler.AuthHandler) {
	var defaultErrorHandler = func(c *fiber.Ctx, err error) error {
		// Status code defaults to 500
		code := fiber.StatusInternalServerError

		// Retrieve the custom status code if it's a *fiber.Error
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		if !strings.Contains(err.Error(), "/favicon.ico") && code >= 500 {
			log.Println(err.Error())
		}

		// Never leak internal detail to the caller
		return response.ResponseError(c, "Internal Error", code)
	}

	router = fiber.New(fiber.Config{
		UnescapePath: true,
		ErrorHandler: defaultErrorHandler,
	})

	router.Use(helmet.New())
	router.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return middleware.LocalhostRegex.MatchString(origin) ||
				slices.Index(configs.GetConfigs().CorsAllowedOrigins, origin) != -1
		},
		AllowCredentials: true,
	}))
	router.Use(recover.New())
	router.Use(requestid.New(requestid.Config{
		Generator: func() string {
			return uuid.NewString()
		},
	}))
	router.Use(accessLogger())
	router.Use(compress.New())

	router.Use(fibersentry.New(fibersentry.Config{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	router.Static("/public", "./public")

	router.Get("/", Welcome)
	router.Get("/documentation", Documentation)

	router.Post("/login", authHandler.Login)
	router.Post("/users", userHandler.CreateUser)

	userRoutes := router.Group("users")
	{
		userRoutes.Get("/", middleware.AuthMiddleware, userHandler.GetAllUsers)
		userRoutes.Get("/:username", middleware.AuthMiddleware, userHandler.GetUser)
		userRoutes.Put("/:username", middleware.AuthMiddleware, userHandler.UpdateUser)
		userRoutes.Delete("/:username", middleware.AuthMiddleware, userHandler.RemoveUser)
		userRoutes.Post("/:username/movies/:movieId", middleware.AuthMiddleware, userHandler.AddFavoriteMovie)
		userRoutes.Delete("/:username/movies/:movieId", middleware.AuthMiddleware, userHandler.RemoveFavoriteMovie)
	}

	movieRoutes := router.Group("movies")
	{
		movieRoutes.Get("/", middleware.AuthMiddleware, movieHandler.GetAllMovies)
		movieRoutes.Get("/genre/:genreName", middleware.AuthMiddleware, movieHandler.GetGenreByName)
		movieRoutes.Get("/directors/:directorName", middleware.AuthMiddleware, movieHandler.GetDirectorByName)
		movieRoutes.Get("/:title", middleware.AuthMiddleware, movieHandler.GetMovieByTitle)
	}

	router.Get("/swagger/*", swagger.HandlerDefault) // default
}

func Start(addr string) error {
	return router.Listen(addr)
}

// accessLogger appends one line per request to the access log file.
func accessLogger() fiber.Handler {
	logPath := configs.GetConfigs().AccessLogPath
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("could not open access log file %s: %v", logPath, err)
		return logger.New()
	}

	return logger.New(logger.Config{
		Format:     "${ip} - - [${time}] \"${method} ${path} ${protocol}\" ${status} ${bytesSent} ${latency} ${locals:requestid}\n",
		TimeFormat: "02/Jan/2006:15:04:05 -0700",
		Output:     file,
	})
}

// Welcome godoc
//
//	@Summary		Welcome
//	@Description	plain-text welcome message.
//	@Tags			System
//	@Success		200	{string}	string
//	@Router			/ [get]
func Welcome(c *fiber.Ctx) error {
	return c.SendString("Welcome to my movie club!")
}

// Documentation godoc
//
//	@Summary		Documentation
//	@Description	serves the static api documentation page.
//	@Tags			System
//	@Success		200	{string}	string
//	@Router			/documentation [get]
func Documentation(c *fiber.Ctx) error {
	return c.SendFile("./public/documentation.html")
}
