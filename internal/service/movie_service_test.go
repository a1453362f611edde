package service

import (
	"context"
	"movieclub_api/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type movieRepoFake struct {
	movies []model.Movie
}

func (f *movieRepoFake) GetAllMovies(ctx context.Context) ([]model.Movie, error) {
	return f.movies, nil
}

func (f *movieRepoFake) GetMovieByTitle(ctx context.Context, title string) (*model.Movie, error) {
	for i := range f.movies {
		if f.movies[i].Title == title {
			return &f.movies[i], nil
		}
	}
	return nil, nil
}

func (f *movieRepoFake) GetGenreByName(ctx context.Context, genreName string) (*model.Genre, error) {
	for i := range f.movies {
		if f.movies[i].Genre.Name == genreName {
			return &f.movies[i].Genre, nil
		}
	}
	return nil, nil
}

func (f *movieRepoFake) GetDirectorByName(ctx context.Context, directorName string) (*model.Director, error) {
	for i := range f.movies {
		if f.movies[i].Director.Name == directorName {
			return &f.movies[i].Director, nil
		}
	}
	return nil, nil
}

//------------------------------------------
//------------------------------------------

func seededMovieService() *MovieService {
	return NewMovieService(&movieRepoFake{movies: []model.Movie{
		{
			Title:       "The Joy of Painting",
			Description: "A calm man paints happy little trees.",
			Genre:       model.Genre{Name: "Documentary", Description: "Non-fiction."},
			Director:    model.Director{Name: "Bob Ross", Bio: "Painter and host."},
		},
		{
			Title:    "Another Film",
			Genre:    model.Genre{Name: "Drama", Description: "Serious stories."},
			Director: model.Director{Name: "Jane Doe", Bio: "Director."},
		},
	}})
}

func TestGetAllMovies(t *testing.T) {
	svc := seededMovieService()

	movies, err := svc.GetAllMovies(context.Background())
	require.NoError(t, err)
	assert.Len(t, movies, 2)
}

func TestGetMovieByTitle(t *testing.T) {
	svc := seededMovieService()

	movie, err := svc.GetMovieByTitle(context.Background(), "The Joy of Painting")
	require.NoError(t, err)
	require.NotNil(t, movie)
	assert.Equal(t, "Documentary", movie.Genre.Name)
}

func TestGetMovieByUnknownTitle(t *testing.T) {
	svc := seededMovieService()

	// unknown title is an absent result, not an error
	movie, err := svc.GetMovieByTitle(context.Background(), "No Such Movie")
	require.NoError(t, err)
	assert.Nil(t, movie)
}

func TestGetGenreByName(t *testing.T) {
	svc := seededMovieService()

	genre, err := svc.GetGenreByName(context.Background(), "Drama")
	require.NoError(t, err)
	require.NotNil(t, genre)
	assert.Equal(t, "Serious stories.", genre.Description)

	genre, err = svc.GetGenreByName(context.Background(), "Musical")
	require.NoError(t, err)
	assert.Nil(t, genre)
}

func TestGetDirectorByName(t *testing.T) {
	svc := seededMovieService()

	director, err := svc.GetDirectorByName(context.Background(), "Bob Ross")
	require.NoError(t, err)
	require.NotNil(t, director)
	assert.Equal(t, "Painter and host.", director.Bio)

	director, err = svc.GetDirectorByName(context.Background(), "Nobody")
	require.NoError(t, err)
	assert.Nil(t, director)
}
