package store

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yourorg/lsaserver/internal/auth"
	"github.com/yourorg/lsaserver/internal/models"
)

// UserStore maneja las cuentas con acceso de escritura al catálogo.
type UserStore struct {
	col *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{col: db.Collection("users")}
}

// Register crea una cuenta nueva con la contraseña hasheada (bcrypt).
// Devuelve ErrConflict si el username ya está en uso.
func (s *UserStore) Register(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, &ValidationError{Field: "username/password", Message: "nombre de usuario y contraseña son obligatorios"}
	}

	// Chequeo previo para un mensaje claro; el índice único cubre la carrera.
	err := s.col.FindOne(ctx, bson.M{"username": username}).Err()
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Username: username, Password: hash}
	res, err := s.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return user, nil
}

// Authenticate verifica las credenciales y devuelve el usuario.
// Nunca distingue entre usuario inexistente y contraseña incorrecta.
func (s *UserStore) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)

	var user models.User
	err := s.col.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
