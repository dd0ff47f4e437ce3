package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/explora/travel-system/internal/core/domain"
	"github.com/explora/travel-system/internal/core/ports"
)

const destinationsCollection = "destinations"

type DestinationRepository struct {
	coll *mongo.Collection
}

func NewDestinationRepository(db *mongo.Database) *DestinationRepository {
	return &DestinationRepository{coll: db.Collection(destinationsCollection)}
}

type mongoDestination struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Region      string             `bson:"region,omitempty"`
	Price       *float64           `bson:"price,omitempty"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (md mongoDestination) toDomain() domain.Destination {
	return domain.Destination{
		ID:          md.ID.Hex(),
		Name:        md.Name,
		Description: md.Description,
		Region:      md.Region,
		Price:       md.Price,
		CreatedAt:   unixToTime(md.CreatedAt),
		UpdatedAt:   unixToTime(md.UpdatedAt),
	}
}

// List returns all destinations ordered by _id ascending, which for ObjectIDs
// follows insertion order.
func (r *DestinationRepository) List(ctx context.Context) ([]domain.Destination, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoDestination
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode destinations: %w", err)
	}

	out := make([]domain.Destination, 0, len(docs))
	for _, md := range docs {
		out = append(out, md.toDomain())
	}
	return out, nil
}

func (r *DestinationRepository) FindByID(ctx context.Context, id string) (*domain.Destination, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDestinationNotFound
	}

	var md mongoDestination
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&md); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDestinationNotFound
		}
		return nil, fmt.Errorf("find destination: %w", err)
	}
	dest := md.toDomain()
	return &dest, nil
}

func (r *DestinationRepository) Create(ctx context.Context, dest *domain.Destination) (*domain.Destination, error) {
	doc := mongoDestination{
		Name:        dest.Name,
		Description: dest.Description,
		Region:      dest.Region,
		Price:       dest.Price,
		CreatedAt:   dest.CreatedAt.Unix(),
		UpdatedAt:   dest.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert destination: %w", err)
	}

	created := *dest
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// Update applies only the non-nil fields of patch and returns the updated row.
func (r *DestinationRepository) Update(ctx context.Context, id string, patch ports.DestinationPatch) (*domain.Destination, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDestinationNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC().Unix()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Region != nil {
		set["region"] = *patch.Region
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}

	var md mongoDestination
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&md)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDestinationNotFound
		}
		return nil, fmt.Errorf("update destination: %w", err)
	}
	dest := md.toDomain()
	return &dest, nil
}

func (r *DestinationRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrDestinationNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete destination: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrDestinationNotFound
	}
	return nil
}
