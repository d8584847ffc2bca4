package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ilibrary/admin-portal/internal/core/domain"
)

const usersCollection = "users"

type Store struct {
	coll *mongo.Collection
	db   *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{coll: db.Collection(usersCollection), db: db}
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	DisplayName  string             `bson:"display_name"`
	Role         string             `bson:"role"`
}

// FindByEmail returns the single credential record for email, or
// domain.ErrUserNotFound. Collation strength 2 makes the match
// case-insensitive, mirroring the citext column behind the data API.
func (s *Store) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	opts := options.FindOne().SetCollation(&options.Collation{Locale: "en", Strength: 2})

	var doc userDoc
	if err := s.coll.FindOne(ctx, bson.M{"email": email}, opts).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	role, err := domain.ParseRole(doc.Role)
	if err != nil {
		return nil, fmt.Errorf("identity store: record %s: %w", doc.ID.Hex(), err)
	}

	return &domain.User{
		ID:           doc.ID.Hex(),
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		DisplayName:  doc.DisplayName,
		Role:         role,
	}, nil
}

// Ping reports MongoDB connectivity. Used by the readiness probe.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}
