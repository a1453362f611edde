package repository

import (
	"context"
	"errors"
	"movieclub_api/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type IUserRepository interface {
	GetAllUsers(ctx context.Context) ([]model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	UpdateUser(ctx context.Context, username string, user *model.User) (*model.User, error)
	AddFavoriteMovie(ctx context.Context, username string, movieId string) (*model.User, error)
	RemoveFavoriteMovie(ctx context.Context, username string, movieId string) (*model.User, error)
	RemoveUser(ctx context.Context, username string) (*model.User, error)
}

type UserRepository struct {
	mongodb *mongo.Database
}

func NewUserRepository(mongodb *mongo.Database) *UserRepository {
	return &UserRepository{mongodb: mongodb}
}

const userCollection = "users"

//------------------------------------------
//------------------------------------------

func (r *UserRepository) GetAllUsers(ctx context.Context) ([]model.User, error) {
	cursor, err := r.mongodb.
		Collection(userCollection).
		Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	users := make([]model.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUserByUsername returns (nil, nil) when no user matches.
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.mongodb.
		Collection(userCollection).
		FindOne(ctx, bson.D{{Key: "username", Value: username}}).
		Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if user.FavoriteMovies == nil {
		user.FavoriteMovies = make([]string, 0)
	}

	result, err := r.mongodb.
		Collection(userCollection).
		InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.Id = id
	}
	return user, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, username string, user *model.User) (*model.User, error) {
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "username", Value: user.Username},
			{Key: "password", Value: user.Password},
			{Key: "email", Value: user.Email},
			{Key: "birthday", Value: user.Birthday},
		}},
	}
	return r.findOneAndUpdate(ctx, username, update)
}

func (r *UserRepository) AddFavoriteMovie(ctx context.Context, username string, movieId string) (*model.User, error) {
	update := bson.D{
		{Key: "$push", Value: bson.D{
			{Key: "favoriteMovies", Value: movieId},
		}},
	}
	return r.findOneAndUpdate(ctx, username, update)
}

func (r *UserRepository) RemoveFavoriteMovie(ctx context.Context, username string, movieId string) (*model.User, error) {
	update := bson.D{
		{Key: "$pull", Value: bson.D{
			{Key: "favoriteMovies", Value: movieId},
		}},
	}
	return r.findOneAndUpdate(ctx, username, update)
}

// RemoveUser returns the removed document, (nil, nil) when no user matches.
func (r *UserRepository) RemoveUser(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.mongodb.
		Collection(userCollection).
		FindOneAndDelete(ctx, bson.D{{Key: "username", Value: username}}).
		Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

//------------------------------------------
//------------------------------------------

func (r *UserRepository) findOneAndUpdate(ctx context.Context, username string, update bson.D) (*model.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user model.User
	err := r.mongodb.
		Collection(userCollection).
		FindOneAndUpdate(ctx, bson.D{{Key: "username", Value: username}}, update, opts).
		Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
