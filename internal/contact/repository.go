package contact

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Create(ctx context.Context, msg Message) error
	List(ctx context.Context, filter ListFilter, limit, offset int64) ([]Message, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)
	GetByID(ctx context.Context, id string) (Message, error)
	UpdateStatus(ctx context.Context, id, status string, now time.Time) (Message, error)
	SetResponse(ctx context.Context, id, response, notes string, now time.Time) (Message, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, msg Message) error {
	_, err := r.col.InsertOne(ctx, msg)
	return err
}

func (r *MongoRepository) List(ctx context.Context, filter ListFilter, limit, offset int64) ([]Message, error) {
	query := r.filterToBSON(filter)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]Message, 0)
	for cursor.Next(ctx) {
		var msg Message
		if err := cursor.Decode(&msg); err != nil {
			return nil, err
		}
		items = append(items, msg)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *MongoRepository) Count(ctx context.Context, filter ListFilter) (int64, error) {
	return r.col.CountDocuments(ctx, r.filterToBSON(filter))
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (Message, error) {
	var msg Message
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}

func (r *MongoRepository) UpdateStatus(ctx context.Context, id, status string, now time.Time) (Message, error) {
	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": now,
		},
	}
	return r.findOneAndUpdate(ctx, id, update)
}

func (r *MongoRepository) SetResponse(ctx context.Context, id, response, notes string, now time.Time) (Message, error) {
	set := bson.M{
		"status":       StatusResponded,
		"response":     response,
		"responded_at": now,
		"updated_at":   now,
	}
	if notes != "" {
		set["notes"] = notes
	}
	return r.findOneAndUpdate(ctx, id, bson.M{"$set": set})
}

func (r *MongoRepository) findOneAndUpdate(ctx context.Context, id string, update bson.M) (Message, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated Message
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		return Message{}, err
	}
	return updated, nil
}

func (r *MongoRepository) filterToBSON(filter ListFilter) bson.M {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	return query
}
