package service

import (
	"context"
	"errors"
	"movieclub_api/internal/repository"
	"movieclub_api/model"
	"movieclub_api/util"
	"time"
)

var ErrUsernameAlreadyExist = errors.New("username already exists")

type IUserService interface {
	GetAllUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, req *model.CreateUserReq) (*model.User, error)
	UpdateUser(ctx context.Context, username string, req *model.UpdateUserReq) (*model.User, error)
	AddFavoriteMovie(ctx context.Context, username string, movieId string) (*model.User, error)
	RemoveFavoriteMovie(ctx context.Context, username string, movieId string) (*model.User, error)
	RemoveUser(ctx context.Context, username string) (*model.User, error)
}

type UserService struct {
	userRepo repository.IUserRepository
	timeout  time.Duration
}

func NewUserService(userRepo repository.IUserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		timeout:  time.Duration(5) * time.Second,
	}
}

//------------------------------------------
//------------------------------------------

func (s *UserService) GetAllUsers(ctx context.Context) ([]model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.userRepo.GetAllUsers(ctx)
}

func (s *UserService) GetUser(ctx context.Context, username string) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.userRepo.GetUserByUsername(ctx, username)
}

// CreateUser registers a new user. The username must not be taken and the
// password is stored as a bcrypt hash, never as plaintext.
func (s *UserService) CreateUser(ctx context.Context, req *model.CreateUserReq) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	existing, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameAlreadyExist
	}

	hashedPassword, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:       req.Username,
		Password:       hashedPassword,
		Email:          req.Email,
		Birthday:       req.Birthday,
		FavoriteMovies: make([]string, 0),
	}
	return s.userRepo.CreateUser(ctx, user)
}

// UpdateUser replaces the profile fields of an existing user, hashing the
// submitted password. Returns (nil, nil) when the username does not exist.
func (s *UserService) UpdateUser(ctx context.Context, username string, req *model.UpdateUserReq) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	hashedPassword, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: req.Username,
		Password: hashedPassword,
		Email:    req.Email,
		Birthday: req.Birthday,
	}
	return s.userRepo.UpdateUser(ctx, username, user)
}

func (s *UserService) AddFavoriteMovie(ctx context.Context, username string, movieId string) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.userRepo.AddFavoriteMovie(ctx, username, movieId)
}

func (s *UserService) RemoveFavoriteMovie(ctx context.Context, username string, movieId string) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.userRepo.RemoveFavoriteMovie(ctx, username, movieId)
}

func (s *UserService) RemoveUser(ctx context.Context, username string) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.userRepo.RemoveUser(ctx, username)
}
