package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	Id             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username       string             `bson:"username" json:"username"`
	Password       string             `bson:"password" json:"-"`
	Email          string             `bson:"email" json:"email"`
	Birthday       *time.Time         `bson:"birthday,omitempty" json:"birthday,omitempty"`
	FavoriteMovies []string           `bson:"favoriteMovies" json:"favoriteMovies"`
}

//---------------------------------------
//---------------------------------------

type CreateUserReq struct {
	Username string     `json:"username"`
	Password string     `json:"password"`
	Email    string     `json:"email"`
	Birthday *time.Time `json:"birthday"`
}

type UpdateUserReq struct {
	Username string     `json:"username"`
	Password string     `json:"password"`
	Email    string     `json:"email"`
	Birthday *time.Time `json:"birthday"`
}

type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRes struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
