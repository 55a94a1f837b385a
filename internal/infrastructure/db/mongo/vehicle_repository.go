package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/minimalapi/vehicles-api/internal/core/domain"
)

const vehiclesCollection = "vehicles"

type VehicleRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewVehicleRepository(db *mongo.Database) *VehicleRepository {
	return &VehicleRepository{db: db, coll: db.Collection(vehiclesCollection)}
}

type vehicleDoc struct {
	ID    int    `bson:"_id"`
	Name  string `bson:"name"`
	Brand string `bson:"brand"`
	Year  int    `bson:"year"`
}

func (d vehicleDoc) toDomain() *domain.Vehicle {
	return &domain.Vehicle{ID: d.ID, Name: d.Name, Brand: d.Brand, Year: d.Year}
}

func docFromVehicle(v *domain.Vehicle) vehicleDoc {
	return vehicleDoc{ID: v.ID, Name: v.Name, Brand: v.Brand, Year: v.Year}
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, vehiclesCollection)
	if err != nil {
		return nil, err
	}

	doc := docFromVehicle(vehicle)
	doc.ID = id
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert vehicle: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id int) (*domain.Vehicle, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc vehicleDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns every vehicle ordered by identifier, which is the store's
// insertion order.
func (r *VehicleRepository) List(ctx context.Context) ([]*domain.Vehicle, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	var vehicles []*domain.Vehicle
	for cursor.Next(ctx) {
		var doc vehicleDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode vehicle: %w", err)
		}
		vehicles = append(vehicles, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return vehicles, nil
}

func (r *VehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": vehicle.ID}, docFromVehicle(vehicle))
	if err != nil {
		return fmt.Errorf("update vehicle: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

// Delete removes the record by ID; deleting an absent record is a no-op.
func (r *VehicleRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	return nil
}
