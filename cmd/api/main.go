package main

import (
	"log"
	"movieclub_api/api"
	"movieclub_api/configs"
	"movieclub_api/db/mongodb"
	"movieclub_api/db/redis"
	"movieclub_api/internal/handler"
	"movieclub_api/internal/repository"
	"movieclub_api/internal/service"
	"time"

	"github.com/getsentry/sentry-go"
)

// @title						Movie Club API
// @version					1.0
// @description				REST backend of the movie club application.
// @host						localhost:8080
// @BasePath					/
// @schemes					http
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and JWT token.
// @Accept						json
// @Produce					json
func main() {
	configs.LoadEnvVariables()

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              configs.GetConfigs().SentryDns,
		Release:          configs.GetConfigs().SentryRelease,
		TracesSampleRate: 1,
		EnableTracing:    true,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	// Flush buffered events before the program terminates.
	defer sentry.Flush(2 * time.Second)

	go redis.ConnectRedis()

	mongoDB, err := mongodb.NewDatabase()
	if err != nil {
		log.Fatalf("could not initialize mongodb database connection: %s", err)
	}
	defer mongoDB.Close()

	userRep := repository.NewUserRepository(mongoDB.GetDB())
	movieRep := repository.NewMovieRepository(mongoDB.GetDB())

	userSvc := service.NewUserService(userRep)
	movieSvc := service.NewMovieService(movieRep)
	authSvc := service.NewAuthService(userRep)

	userHandler := handler.NewUserHandler(userSvc)
	movieHandler := handler.NewMovieHandler(movieSvc)
	authHandler := handler.NewAuthHandler(authSvc)

	api.InitRouter(userHandler, movieHandler, authHandler)
	log.Fatal(api.Start("0.0.0.0:" + configs.GetConfigs().Port))
}
