package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/BrandonJafeth/landing-photography/internal/auth"
	"github.com/BrandonJafeth/landing-photography/internal/config"
	"github.com/BrandonJafeth/landing-photography/internal/db"
	"github.com/BrandonJafeth/landing-photography/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type seedCategory struct {
	Name        string
	Description string
}

type seedImage struct {
	URL       string
	Title     string
	Category  string
	Featured  bool
	SortOrder int
}

type seedService struct {
	Title       string
	Description string
	Image       string
	Features    []string
	SortOrder   int
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatal(err)
	}

	now := time.Now().In(cfg.Timezone)

	categories := []seedCategory{
		{Name: "Bodas", Description: "Reportajes completos de boda"},
		{Name: "Retratos", Description: "Sesiones de retrato en estudio y exterior"},
		{Name: "Eventos", Description: "Cobertura de eventos corporativos y sociales"},
		{Name: "Producto", Description: "Fotografía de producto y gastronomía"},
	}

	categoryIDs := make(map[string]string, len(categories))
	for _, cat := range categories {
		id, err := seedOneCategory(ctx, cols, cat, now)
		if err != nil {
			log.Fatalf("seed category %s: %v", cat.Name, err)
		}
		categoryIDs[cat.Name] = id
	}

	images := []seedImage{
		{URL: "https://res.cloudinary.com/demo/image/upload/wedding-ceremony.jpg", Title: "Ceremonia al atardecer", Category: "Bodas", Featured: true, SortOrder: 0},
		{URL: "https://res.cloudinary.com/demo/image/upload/wedding-rings.jpg", Title: "Detalle de anillos", Category: "Bodas", SortOrder: 1},
		{URL: "https://res.cloudinary.com/demo/image/upload/portrait-studio.jpg", Title: "Retrato en estudio", Category: "Retratos", Featured: true, SortOrder: 2},
		{URL: "https://res.cloudinary.com/demo/image/upload/corporate-event.jpg", Title: "Evento corporativo", Category: "Eventos", SortOrder: 3},
		{URL: "https://res.cloudinary.com/demo/image/upload/product-coffee.jpg", Title: "Café de especialidad", Category: "Producto", SortOrder: 4},
		{URL: "https://res.cloudinary.com/demo/image/upload/portrait-exterior.jpg", Title: "Retrato en exterior", Category: "Retratos", SortOrder: 5},
	}

	featuredOrder := 0
	for _, img := range images {
		if err := seedOneImage(ctx, cols, img, categoryIDs, &featuredOrder, now); err != nil {
			log.Fatalf("seed image %s: %v", img.Title, err)
		}
	}

	services := []seedService{
		{Title: "Bodas", Description: "Reportaje completo del día de tu boda, de la preparación al baile.", Image: "https://res.cloudinary.com/demo/image/upload/service-wedding.jpg", Features: []string{"Cobertura completa", "Álbum digital", "Sesión de pareja"}, SortOrder: 0},
		{Title: "Retratos", Description: "Sesiones individuales y familiares en estudio o exterior.", Image: "https://res.cloudinary.com/demo/image/upload/service-portrait.jpg", Features: []string{"Sesión de una hora", "Galería privada"}, SortOrder: 1},
		{Title: "Eventos", Description: "Cobertura de eventos corporativos, presentaciones y celebraciones.", Image: "https://res.cloudinary.com/demo/image/upload/service-event.jpg", Features: []string{"Entrega en 48h"}, SortOrder: 2},
	}

	for _, svc := range services {
		if err := seedOneService(ctx, cols, svc, now); err != nil {
			log.Fatalf("seed service %s: %v", svc.Title, err)
		}
	}

	if password := os.Getenv("ADMIN_PASSWORD"); password != "" {
		username := cfg.AdminUser
		if err := seedAdminUser(ctx, cols, username, password, now); err != nil {
			log.Fatalf("seed admin %s: %v", username, err)
		}
	} else {
		log.Println("seed admin: ADMIN_PASSWORD missing, skipping")
	}

	log.Println("seed completed")
}

func seedOneCategory(ctx context.Context, cols *db.Collections, cat seedCategory, now time.Time) (string, error) {
	filter := bson.M{"name": cat.Name}

	var existing struct {
		ID string `bson:"_id"`
	}
	err := cols.ImageCategories.FindOne(ctx, filter).Decode(&existing)
	if err == nil {
		return existing.ID, nil
	}

	id := primitive.NewObjectID().Hex()
	_, err = cols.ImageCategories.InsertOne(ctx, bson.M{
		"_id":         id,
		"name":        cat.Name,
		"description": cat.Description,
		"created_at":  now,
	})
	return id, err
}

func seedOneImage(ctx context.Context, cols *db.Collections, img seedImage, categoryIDs map[string]string, featuredOrder *int, now time.Time) error {
	filter := bson.M{"image_url": img.URL}
	setOnInsert := bson.M{
		"_id":         primitive.NewObjectID().Hex(),
		"image_url":   img.URL,
		"title":       img.Title,
		"alt":         img.Title,
		"category_id": categoryIDs[img.Category],
		"is_featured": img.Featured,
		"sort_order":  img.SortOrder,
		"is_visible":  true,
		"created_at":  now,
		"updated_at":  now,
	}
	if img.Featured {
		setOnInsert["featured_order"] = *featuredOrder
		*featuredOrder++
	}
	_, err := cols.PortfolioImages.UpdateOne(ctx, filter, bson.M{"$setOnInsert": setOnInsert}, options.Update().SetUpsert(true))
	return err
}

func seedOneService(ctx context.Context, cols *db.Collections, svc seedService, now time.Time) error {
	slug := utils.Slugify(svc.Title)
	filter := bson.M{"slug": slug}
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":         primitive.NewObjectID().Hex(),
			"title":       svc.Title,
			"slug":        slug,
			"description": svc.Description,
			"image":       svc.Image,
			"cta_text":    "Reservar",
			"features":    svc.Features,
			"is_active":   true,
			"sort_order":  svc.SortOrder,
			"created_at":  now,
			"updated_at":  now,
		},
	}
	_, err := cols.Services.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func seedAdminUser(ctx context.Context, cols *db.Collections, username, password string, now time.Time) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	filter := bson.M{"username": username}
	update := bson.M{
		"$set": bson.M{
			"password_hash": hash,
		},
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID().Hex(),
			"username":   username,
			"created_at": now,
		},
	}
	_, err = cols.AdminUsers.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
