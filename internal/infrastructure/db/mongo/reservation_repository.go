package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/explora/travel-system/internal/core/domain"
)

const reservationsCollection = "reservations"

type ReservationRepository struct {
	coll *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{coll: db.Collection(reservationsCollection)}
}

type mongoReservation struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        string             `bson:"user_id"`
	DestinationID string             `bson:"destination_id"`
	People        int                `bson:"people"`
	CheckIn       string             `bson:"check_in"`
	CheckOut      string             `bson:"check_out"`
	TotalPrice    float64            `bson:"total_price"`
	CreatedAt     int64              `bson:"created_at"`
}

const dateLayout = "2006-01-02"

func (mr mongoReservation) toDomain() domain.Reservation {
	checkIn, _ := time.Parse(dateLayout, mr.CheckIn)
	checkOut, _ := time.Parse(dateLayout, mr.CheckOut)
	return domain.Reservation{
		ID:            mr.ID.Hex(),
		UserID:        mr.UserID,
		DestinationID: mr.DestinationID,
		People:        mr.People,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		TotalPrice:    mr.TotalPrice,
		CreatedAt:     unixToTime(mr.CreatedAt),
	}
}

// EnsureIndexes creates the user_id index backing the owner-scoped listing.
func (r *ReservationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	doc := mongoReservation{
		UserID:        res.UserID,
		DestinationID: res.DestinationID,
		People:        res.People,
		CheckIn:       res.CheckIn.Format(dateLayout),
		CheckOut:      res.CheckOut.Format(dateLayout),
		TotalPrice:    res.TotalPrice,
		CreatedAt:     res.CreatedAt.Unix(),
	}

	inserted, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert reservation: %w", err)
	}

	created := *res
	if oid, ok := inserted.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ReservationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoReservation
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode reservations: %w", err)
	}

	out := make([]domain.Reservation, 0, len(docs))
	for _, mr := range docs {
		out = append(out, mr.toDomain())
	}
	return out, nil
}
