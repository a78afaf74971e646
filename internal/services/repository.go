package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	List(ctx context.Context, activeOnly bool) ([]Service, error)
	Get(ctx context.Context, id string) (Service, error)
	GetBySlug(ctx context.Context, slug string) (Service, error)
	Create(ctx context.Context, svc Service) error
	Update(ctx context.Context, svc Service) error
	Delete(ctx context.Context, id string) error
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) List(ctx context.Context, activeOnly bool) ([]Service, error) {
	query := bson.M{}
	if activeOnly {
		query["is_active"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}, {Key: "title", Value: 1}})

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]Service, 0)
	for cursor.Next(ctx) {
		var svc Service
		if err := cursor.Decode(&svc); err != nil {
			return nil, err
		}
		items = append(items, svc)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) Get(ctx context.Context, id string) (Service, error) {
	var svc Service
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&svc); err != nil {
		return Service{}, err
	}
	return svc, nil
}

func (r *MongoRepository) GetBySlug(ctx context.Context, slug string) (Service, error) {
	var svc Service
	if err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&svc); err != nil {
		return Service{}, err
	}
	return svc, nil
}

func (r *MongoRepository) Create(ctx context.Context, svc Service) error {
	_, err := r.col.InsertOne(ctx, svc)
	return err
}

func (r *MongoRepository) Update(ctx context.Context, svc Service) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": svc.ID}, svc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
