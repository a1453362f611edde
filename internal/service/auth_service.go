package service

import (
	"context"
	"errors"
	"movieclub_api/internal/repository"
	"movieclub_api/model"
	"movieclub_api/util"
	"time"
)

// ErrInvalidCredentials deliberately covers both unknown username and wrong
// password so the response never reveals which one failed.
var ErrInvalidCredentials = errors.New("username and password do not match")

type IAuthService interface {
	Login(ctx context.Context, username string, password string) (*model.LoginRes, error)
}

type AuthService struct {
	userRepo repository.IUserRepository
	timeout  time.Duration
}

func NewAuthService(userRepo repository.IUserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		timeout:  time.Duration(5) * time.Second,
	}
}

//------------------------------------------
//------------------------------------------

func (s *AuthService) Login(ctx context.Context, username string, password string) (*model.LoginRes, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !util.CheckPassword(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := util.CreateJwtToken(user.Username)
	if err != nil {
		return nil, err
	}

	return &model.LoginRes{
		User:  user,
		Token: token.AccessToken,
	}, nil
}
