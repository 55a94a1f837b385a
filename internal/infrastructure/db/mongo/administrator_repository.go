package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/minimalapi/vehicles-api/internal/core/domain"
)

const administratorsCollection = "administrators"

type AdministratorRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewAdministratorRepository(db *mongo.Database) *AdministratorRepository {
	return &AdministratorRepository{db: db, coll: db.Collection(administratorsCollection)}
}

// administratorDoc is the persisted shape. The role is stored as its
// canonical label string.
type administratorDoc struct {
	ID       int    `bson:"_id"`
	Email    string `bson:"email"`
	Password string `bson:"password"`
	Profile  string `bson:"profile"`
}

func (d administratorDoc) toDomain() (*domain.Administrator, error) {
	profile, err := domain.ParseRole(d.Profile)
	if err != nil {
		return nil, fmt.Errorf("administrator %d: %w", d.ID, err)
	}
	return &domain.Administrator{
		ID:       d.ID,
		Email:    d.Email,
		Password: d.Password,
		Profile:  profile,
	}, nil
}

func docFromAdministrator(a *domain.Administrator) administratorDoc {
	return administratorDoc{
		ID:       a.ID,
		Email:    a.Email,
		Password: a.Password,
		Profile:  a.Profile.Label(),
	}
}

func (r *AdministratorRepository) Create(ctx context.Context, administrator *domain.Administrator) (*domain.Administrator, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, administratorsCollection)
	if err != nil {
		return nil, err
	}

	doc := docFromAdministrator(administrator)
	doc.ID = id
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert administrator: %w", err)
	}

	return doc.toDomain()
}

func (r *AdministratorRepository) FindByID(ctx context.Context, id int) (*domain.Administrator, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc administratorDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAdministratorNotFound
		}
		return nil, fmt.Errorf("find administrator: %w", err)
	}
	return doc.toDomain()
}

// FindByEmail performs an exact, case-sensitive lookup.
func (r *AdministratorRepository) FindByEmail(ctx context.Context, email string) (*domain.Administrator, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc administratorDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAdministratorNotFound
		}
		return nil, fmt.Errorf("find administrator by email: %w", err)
	}
	return doc.toDomain()
}

// List returns every administrator ordered by identifier, which is the
// store's insertion order.
func (r *AdministratorRepository) List(ctx context.Context) ([]*domain.Administrator, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list administrators: %w", err)
	}
	defer cursor.Close(ctx)

	var administrators []*domain.Administrator
	for cursor.Next(ctx) {
		var doc administratorDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode administrator: %w", err)
		}
		administrator, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		administrators = append(administrators, administrator)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list administrators: %w", err)
	}
	return administrators, nil
}

func (r *AdministratorRepository) Update(ctx context.Context, administrator *domain.Administrator) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": administrator.ID}, docFromAdministrator(administrator))
	if err != nil {
		return fmt.Errorf("update administrator: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrAdministratorNotFound
	}
	return nil
}

// Delete removes the record by ID. Absence is not an error: the caller's
// goal state (record gone) already holds.
func (r *AdministratorRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete administrator: %w", err)
	}
	return nil
}

// EnsureIndexes creates the email lookup index used by login.
func (r *AdministratorRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
	})
	return err
}

// EnsureSeed inserts the two bootstrap administrators when the collection is
// empty, so a fresh deployment always has a usable ADMINISTRATOR login.
func (r *AdministratorRepository) EnsureSeed(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count administrators: %w", err)
	}
	if count > 0 {
		return nil
	}

	seed := []interface{}{
		administratorDoc{ID: 1, Email: "administrator@minimalapi.com", Password: "12345678", Profile: domain.RoleAdministrator.Label()},
		administratorDoc{ID: 2, Email: "editor@minimalapi.com", Password: "12345678", Profile: domain.RoleEditor.Label()},
	}
	if _, err := r.coll.InsertMany(ctx, seed); err != nil {
		return fmt.Errorf("seed administrators: %w", err)
	}

	// Keep the ID counter ahead of the seeded records.
	_, err = r.db.Collection(countersCollection).UpdateOne(
		ctx,
		bson.M{"_id": administratorsCollection},
		bson.M{"$max": bson.M{"seq": len(seed)}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("advance administrator counter: %w", err)
	}
	return nil
}
