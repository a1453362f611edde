package service

import (
	"context"
	"movieclub_api/configs"
	"movieclub_api/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthConfigs(t *testing.T) {
	t.Helper()
	configs.LoadEnvVariables()
	configs.SetAccessTokenSecret("unit-test-secret")
}

func TestLogin(t *testing.T) {
	setupAuthConfigs(t)
	repo := newUserRepoFake()
	userSvc := NewUserService(repo)
	authSvc := NewAuthService(repo)
	ctx := context.Background()

	_, err := userSvc.CreateUser(ctx, createUserReq("bobross"))
	require.NoError(t, err)

	res, err := authSvc.Login(ctx, "bobross", "happy-little-trees")
	require.NoError(t, err)
	require.NotNil(t, res)
	require.NotNil(t, res.User)
	assert.Equal(t, "bobross", res.User.Username)
	require.NotEmpty(t, res.Token)

	// the issued token resolves back to the same username
	_, claims, err := util.VerifyToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "bobross", claims.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	setupAuthConfigs(t)
	repo := newUserRepoFake()
	userSvc := NewUserService(repo)
	authSvc := NewAuthService(repo)
	ctx := context.Background()

	_, err := userSvc.CreateUser(ctx, createUserReq("bobross"))
	require.NoError(t, err)

	res, err := authSvc.Login(ctx, "bobross", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, res)
}

func TestLoginUnknownUser(t *testing.T) {
	setupAuthConfigs(t)
	authSvc := NewAuthService(newUserRepoFake())

	res, err := authSvc.Login(context.Background(), "ghost", "whatever")
	// same error as a wrong password, the caller can not tell which was wrong
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, res)
}
