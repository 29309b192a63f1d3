package deviceRepo

import (
	"context"
	"fmt"
	"time"

	"medonrent/database"
	"medonrent/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDeviceRepo implements DeviceRepository using MongoDB.
type MongoDeviceRepo struct {
	coll *mongo.Collection
}

// NewMongoDeviceRepo constructs a new instance of MongoDeviceRepo.
func NewMongoDeviceRepo() *MongoDeviceRepo {
	return &MongoDeviceRepo{coll: database.DB().Collection("devices")}
}

// EnsureIndexes creates the unique deviceId index.
func (r *MongoDeviceRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "deviceId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := r.coll.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("failed to create device indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a device by deviceId.
func (r *MongoDeviceRepo) GetByID(ctx context.Context, id string) (*models.Device, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var device models.Device
	err := r.coll.FindOne(ctx, bson.M{"deviceId": id}).Decode(&device)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching device %s: %w", id, err)
	}
	return &device, nil
}

// GetBySerial retrieves a device by serial number, or nil when absent.
func (r *MongoDeviceRepo) GetBySerial(ctx context.Context, serialNumber string) (*models.Device, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var device models.Device
	err := r.coll.FindOne(ctx, bson.M{"serialNumber": serialNumber}).Decode(&device)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching device by serial: %w", err)
	}
	return &device, nil
}

// Create inserts a new device document.
func (r *MongoDeviceRepo) Create(ctx context.Context, device *models.Device) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	device.CreatedAt = now
	device.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, device); err != nil {
		return fmt.Errorf("failed to create device: %w", err)
	}
	return nil
}

// Update applies an update document and returns the updated device.
// The document may carry $set and $push sections.
func (r *MongoDeviceRepo) Update(ctx context.Context, id string, update bson.M) (*models.Device, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Device
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"deviceId": id}, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update device %s: %w", id, err)
	}
	return &updated, nil
}

// Delete removes a device document by deviceId.
func (r *MongoDeviceRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"deviceId": id})
	if err != nil {
		return fmt.Errorf("failed to delete device %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// GetAll retrieves all devices.
func (r *MongoDeviceRepo) GetAll(ctx context.Context) ([]models.Device, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error fetching devices: %w", err)
	}
	defer cursor.Close(ctx)

	var devices []models.Device
	if err := cursor.All(ctx, &devices); err != nil {
		return nil, fmt.Errorf("error decoding devices: %w", err)
	}
	return devices, nil
}

// Count counts devices matching the given filter.
func (r *MongoDeviceRepo) Count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error counting devices: %w", err)
	}
	return n, nil
}

// TypeBreakdown groups devices by type with availability counts.
func (r *MongoDeviceRepo) TypeBreakdown(ctx context.Context) ([]models.DeviceTypeGroup, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{
			"$group": bson.M{
				"_id":   "$type",
				"count": bson.M{"$sum": 1},
				"available": bson.M{
					"$sum": bson.M{"$cond": []interface{}{
						bson.M{"$eq": []interface{}{"$status", models.DeviceAvailable}}, 1, 0,
					}},
				},
				"rented": bson.M{
					"$sum": bson.M{"$cond": []interface{}{
						bson.M{"$eq": []interface{}{"$status", models.DeviceRented}}, 1, 0,
					}},
				},
			},
		},
		{"$sort": bson.M{"count": -1}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating device types: %w", err)
	}
	defer cursor.Close(ctx)

	var groups []models.DeviceTypeGroup
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("error decoding device type groups: %w", err)
	}
	return groups, nil
}
