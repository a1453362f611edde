package util

import (
	"fmt"
	"movieclub_api/configs"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type MyJwtClaims struct {
	Username    string `json:"username"`
	GeneratedAt int64  `json:"generatedAt"`
	jwt.RegisteredClaims
}

type TokenDetail struct {
	AccessToken string
	ExpiresAt   int64
}

func CreateJwtToken(username string) (*TokenDetail, error) {
	now := time.Now()
	expiresAt := now.Add(time.Duration(configs.GetConfigs().TokenExpireDays) * 24 * time.Hour)

	claims := MyJwtClaims{
		Username:    username,
		GeneratedAt: now.UnixMilli(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := token.SignedString([]byte(configs.GetConfigs().AccessTokenSecret))
	if err != nil {
		return nil, err
	}

	return &TokenDetail{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt.UnixMilli(),
	}, nil
}

func VerifyToken(tokenString string) (*jwt.Token, *MyJwtClaims, error) {
	claims := MyJwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signature method")
		}
		return []byte(configs.GetConfigs().AccessTokenSecret), nil
	})

	if err != nil {
		return nil, nil, err
	}

	return token, &claims, nil
}
