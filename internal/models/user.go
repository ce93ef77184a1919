package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User es una cuenta con permiso de escritura sobre el catálogo.
// Password siempre contiene el hash bcrypt, nunca la contraseña en claro.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Password string             `bson:"password" json:"-"`
}
