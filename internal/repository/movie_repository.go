package repository

import (
	"context"
	"errors"
	"movieclub_api/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type IMovieRepository interface {
	GetAllMovies(ctx context.Context) ([]model.Movie, error)
	GetMovieByTitle(ctx context.Context, title string) (*model.Movie, error)
	GetGenreByName(ctx context.Context, genreName string) (*model.Genre, error)
	GetDirectorByName(ctx context.Context, directorName string) (*model.Director, error)
}

type MovieRepository struct {
	mongodb *mongo.Database
}

func NewMovieRepository(mongodb *mongo.Database) *MovieRepository {
	return &MovieRepository{mongodb: mongodb}
}

const movieCollection = "movies"

//------------------------------------------
//------------------------------------------

func (r *MovieRepository) GetAllMovies(ctx context.Context) ([]model.Movie, error) {
	cursor, err := r.mongodb.
		Collection(movieCollection).
		Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	movies := make([]model.Movie, 0)
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// GetMovieByTitle returns (nil, nil) when no movie matches.
func (r *MovieRepository) GetMovieByTitle(ctx context.Context, title string) (*model.Movie, error) {
	var movie model.Movie
	err := r.mongodb.
		Collection(movieCollection).
		FindOne(ctx, bson.D{{Key: "title", Value: title}}).
		Decode(&movie)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// GetGenreByName returns the genre sub-document of the first movie whose
// genre name matches, (nil, nil) when no movie matches.
func (r *MovieRepository) GetGenreByName(ctx context.Context, genreName string) (*model.Genre, error) {
	var result struct {
		Genre model.Genre `bson:"genre"`
	}
	opts := options.FindOne().SetProjection(bson.D{
		{Key: "genre", Value: 1},
	})
	err := r.mongodb.
		Collection(movieCollection).
		FindOne(ctx, bson.D{{Key: "genre.name", Value: genreName}}, opts).
		Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result.Genre, nil
}

// GetDirectorByName returns the director sub-document of the first movie
// whose director name matches, (nil, nil) when no movie matches.
func (r *MovieRepository) GetDirectorByName(ctx context.Context, directorName string) (*model.Director, error) {
	var result struct {
		Director model.Director `bson:"director"`
	}
	opts := options.FindOne().SetProjection(bson.D{
		{Key: "director", Value: 1},
	})
	err := r.mongodb.
		Collection(movieCollection).
		FindOne(ctx, bson.D{{Key: "director.name", Value: directorName}}, opts).
		Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result.Director, nil
}
