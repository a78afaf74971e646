package gallery

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	ListImages(ctx context.Context) ([]Image, error)
	ListFeatured(ctx context.Context) ([]Image, error)
	ListCategories(ctx context.Context) ([]Category, error)
	GetImage(ctx context.Context, id string) (Image, error)
	CreateImage(ctx context.Context, img Image) error
	UpdateImage(ctx context.Context, img Image) error
	DeleteImage(ctx context.Context, id string) error
	CreateCategory(ctx context.Context, cat Category) error
	UpdateCategory(ctx context.Context, id, name, description string) (Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type MongoRepository struct {
	images     *mongo.Collection
	categories *mongo.Collection
}

func NewRepository(images, categories *mongo.Collection) *MongoRepository {
	return &MongoRepository{images: images, categories: categories}
}

func (r *MongoRepository) ListImages(ctx context.Context) ([]Image, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}, {Key: "created_at", Value: 1}})
	return r.findImages(ctx, bson.M{"is_visible": true}, opts)
}

func (r *MongoRepository) ListFeatured(ctx context.Context) ([]Image, error) {
	opts := options.Find().SetSort(bson.D{{Key: "featured_order", Value: 1}})
	return r.findImages(ctx, bson.M{"is_visible": true, "is_featured": true}, opts)
}

func (r *MongoRepository) findImages(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]Image, error) {
	cursor, err := r.images.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]Image, 0)
	for cursor.Next(ctx) {
		var img Image
		if err := cursor.Decode(&img); err != nil {
			return nil, err
		}
		items = append(items, img)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) ListCategories(ctx context.Context) ([]Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.categories.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]Category, 0)
	for cursor.Next(ctx) {
		var cat Category
		if err := cursor.Decode(&cat); err != nil {
			return nil, err
		}
		items = append(items, cat)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) GetImage(ctx context.Context, id string) (Image, error) {
	var img Image
	if err := r.images.FindOne(ctx, bson.M{"_id": id}).Decode(&img); err != nil {
		return Image{}, err
	}
	return img, nil
}

func (r *MongoRepository) CreateImage(ctx context.Context, img Image) error {
	_, err := r.images.InsertOne(ctx, img)
	return err
}

func (r *MongoRepository) UpdateImage(ctx context.Context, img Image) error {
	res, err := r.images.ReplaceOne(ctx, bson.M{"_id": img.ID}, img)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRepository) DeleteImage(ctx context.Context, id string) error {
	res, err := r.images.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRepository) CreateCategory(ctx context.Context, cat Category) error {
	_, err := r.categories.InsertOne(ctx, cat)
	return err
}

func (r *MongoRepository) UpdateCategory(ctx context.Context, id, name, description string) (Category, error) {
	update := bson.M{
		"$set": bson.M{
			"name":        name,
			"description": description,
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Category
	if err := r.categories.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		return Category{}, err
	}
	return updated, nil
}

func (r *MongoRepository) DeleteCategory(ctx context.Context, id string) error {
	res, err := r.categories.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
