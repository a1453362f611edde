package service

import (
	"context"
	"movieclub_api/internal/repository"
	"movieclub_api/model"
	"time"
)

type IMovieService interface {
	GetAllMovies(ctx context.Context) ([]model.Movie, error)
	GetMovieByTitle(ctx context.Context, title string) (*model.Movie, error)
	GetGenreByName(ctx context.Context, genreName string) (*model.Genre, error)
	GetDirectorByName(ctx context.Context, directorName string) (*model.Director, error)
}

type MovieService struct {
	movieRepo repository.IMovieRepository
	timeout   time.Duration
}

func NewMovieService(movieRepo repository.IMovieRepository) *MovieService {
	return &MovieService{
		movieRepo: movieRepo,
		timeout:   time.Duration(5) * time.Second,
	}
}

//------------------------------------------
//------------------------------------------

// Movies are seeded out-of-band and read-only through this api, so every
// read goes through the redis cache first.

func (s *MovieService) GetAllMovies(ctx context.Context) ([]model.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var cached []model.Movie
	if ok := getMoviesListCache(&cached); ok {
		return cached, nil
	}

	movies, err := s.movieRepo.GetAllMovies(ctx)
	if err != nil {
		return nil, err
	}
	setMoviesListCache(movies)
	return movies, nil
}

func (s *MovieService) GetMovieByTitle(ctx context.Context, title string) (*model.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var cached model.Movie
	if ok := getMovieDataCache(title, &cached); ok {
		return &cached, nil
	}

	movie, err := s.movieRepo.GetMovieByTitle(ctx, title)
	if err != nil || movie == nil {
		return movie, err
	}
	setMovieDataCache(title, movie)
	return movie, nil
}

func (s *MovieService) GetGenreByName(ctx context.Context, genreName string) (*model.Genre, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var cached model.Genre
	if ok := getGenreDataCache(genreName, &cached); ok {
		return &cached, nil
	}

	genre, err := s.movieRepo.GetGenreByName(ctx, genreName)
	if err != nil || genre == nil {
		return genre, err
	}
	setGenreDataCache(genreName, genre)
	return genre, nil
}

func (s *MovieService) GetDirectorByName(ctx context.Context, directorName string) (*model.Director, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var cached model.Director
	if ok := getDirectorDataCache(directorName, &cached); ok {
		return &cached, nil
	}

	director, err := s.movieRepo.GetDirectorByName(ctx, directorName)
	if err != nil || director == nil {
		return director, err
	}
	setDirectorDataCache(directorName, director)
	return director, nil
}
