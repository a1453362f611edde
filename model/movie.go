package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Movie struct {
	Id          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Genre       Genre              `bson:"genre" json:"genre"`
	Director    Director           `bson:"director" json:"director"`
	ImageUrl    string             `bson:"imageUrl" json:"imageUrl"`
	Featured    bool               `bson:"featured" json:"featured"`
}

type Genre struct {
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
}

type Director struct {
	Name  string `bson:"name" json:"name"`
	Bio   string `bson:"bio" json:"bio"`
	Birth string `bson:"birth,omitempty" json:"birth,omitempty"`
	Death string `bson:"death,omitempty" json:"death,omitempty"`
}
