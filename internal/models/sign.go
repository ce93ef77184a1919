package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categorías válidas para una seña (enum cerrado)
const (
	CategoryAbecedario = "abecedario"
	CategoryNumeros    = "numeros"
	CategorySaludos    = "saludos"
	CategoryOtros      = "otros"
)

// PlaceholderImageURL se usa cuando una seña se crea sin imagen ni URL explícita.
const PlaceholderImageURL = "https://via.placeholder.com/300x200?text=LSA+Se%C3%B1a"

// ValidCategory reports whether c is one of the fixed sign categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryAbecedario, CategoryNumeros, CategorySaludos, CategoryOtros:
		return true
	}
	return false
}

// Sign representa una seña del catálogo LSA.
type Sign struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Category    string             `bson:"category" json:"category"`
	ImageURL    string             `bson:"imageUrl" json:"imageUrl"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateSignRequest es el cuerpo de POST /api/signs (JSON o campos multipart).
type CreateSignRequest struct {
	Name        string `json:"name" form:"name"`
	Category    string `json:"category" form:"category"`
	ImageURL    string `json:"imageUrl" form:"imageUrl"`
	Description string `json:"description" form:"description"`
}

// SignPatch es el cuerpo de PUT /api/signs/:id. Los punteros distinguen
// "campo ausente" de "campo presente con valor": solo los campos presentes
// se aplican al documento.
type SignPatch struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	ImageURL    *string `json:"imageUrl"`
	Description *string `json:"description"`
}
