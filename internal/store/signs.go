package store

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yourorg/lsaserver/internal/models"
)

// Opciones de ordenamiento aceptadas por List.
const (
	SortNameAsc  = "name_asc"
	SortNameDesc = "name_desc"
)

// ListFilter son los parámetros opcionales de GET /api/signs.
type ListFilter struct {
	Category string // coincidencia exacta
	Search   string // substring sobre name, insensible a mayúsculas
	Sort     string // SortNameAsc, SortNameDesc o vacío (orden del store)
}

// SignStore maneja el catálogo de señas.
type SignStore struct {
	col *mongo.Collection
}

func NewSignStore(db *mongo.Database) *SignStore {
	return &SignStore{col: db.Collection("signs")}
}

// buildListQuery traduce el filtro a un query de Mongo. Los metacaracteres
// del término de búsqueda se escapan: la búsqueda es por substring literal.
func buildListQuery(f ListFilter) bson.M {
	query := bson.M{}
	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.Search != "" {
		query["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
	}
	return query
}

func listSort(sort string) bson.D {
	switch sort {
	case SortNameAsc:
		return bson.D{{Key: "name", Value: 1}}
	case SortNameDesc:
		return bson.D{{Key: "name", Value: -1}}
	}
	return nil
}

// List devuelve las señas que cumplen el filtro. Nunca devuelve slice nil.
func (s *SignStore) List(ctx context.Context, f ListFilter) ([]models.Sign, error) {
	opts := options.Find()
	if sort := listSort(f.Sort); sort != nil {
		opts.SetSort(sort)
	}

	cursor, err := s.col.Find(ctx, buildListQuery(f), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	signs := []models.Sign{}
	if err := cursor.All(ctx, &signs); err != nil {
		return nil, err
	}
	return signs, nil
}

// GetByID busca una seña por id. Un id malformado se rechaza con ErrInvalidID
// antes de consultar el store.
func (s *SignStore) GetByID(ctx context.Context, id string) (*models.Sign, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var sign models.Sign
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&sign); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sign, nil
}

// newSignDoc aplica los defaults de creación: categoría abecedario e imagen
// placeholder cuando no se indicó otra cosa.
func newSignDoc(req models.CreateSignRequest, now time.Time) (*models.Sign, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "el nombre de la seña es obligatorio"}
	}

	category := req.Category
	if category == "" {
		category = models.CategoryAbecedario
	}
	if !models.ValidCategory(category) {
		return nil, &ValidationError{Field: "category", Message: "categoría inválida"}
	}

	imageURL := req.ImageURL
	if imageURL == "" {
		imageURL = models.PlaceholderImageURL
	}

	return &models.Sign{
		Name:        name,
		Category:    category,
		ImageURL:    imageURL,
		Description: strings.TrimSpace(req.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Create inserta una seña nueva. Devuelve ErrConflict si el nombre ya existe.
func (s *SignStore) Create(ctx context.Context, req models.CreateSignRequest) (*models.Sign, error) {
	sign, err := newSignDoc(req, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	res, err := s.col.InsertOne(ctx, sign)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		sign.ID = oid
	}
	return sign, nil
}

// patchSet valida el patch completo y arma el documento $set con solo los
// campos presentes. La validación ocurre antes de tocar nada: un patch
// inválido no produce mutación parcial.
func patchSet(patch models.SignPatch, now time.Time) (bson.M, error) {
	set := bson.M{}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, &ValidationError{Field: "name", Message: "el nombre no puede estar vacío"}
		}
		set["name"] = name
	}
	if patch.Category != nil {
		if !models.ValidCategory(*patch.Category) {
			return nil, &ValidationError{Field: "category", Message: "categoría inválida"}
		}
		set["category"] = *patch.Category
	}
	if patch.ImageURL != nil {
		set["imageUrl"] = *patch.ImageURL
	}
	if patch.Description != nil {
		set["description"] = strings.TrimSpace(*patch.Description)
	}

	set["updatedAt"] = now
	return set, nil
}

// Update aplica un patch parcial y devuelve el documento resultante.
func (s *SignStore) Update(ctx context.Context, id string, patch models.SignPatch) (*models.Sign, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	set, err := patchSet(patch, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var sign models.Sign
	err = s.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&sign)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &sign, nil
}

// Delete elimina una seña por id. DeletedCount cero se reporta como ErrNotFound.
func (s *SignStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
