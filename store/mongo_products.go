package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sweetstore/sweetstore-api/models"
)

func (m *Mongo) ListProducts(ctx context.Context) ([]models.Product, error) {
	return decodeAll[models.Product](ctx, m.products, bson.D{})
}

func (m *Mongo) ListProductsByCategory(ctx context.Context, category models.Category) ([]models.Product, error) {
	return decodeAll[models.Product](ctx, m.products, bson.D{{Key: "category", Value: category}})
}

func (m *Mongo) GetProduct(ctx context.Context, productID int) (*models.Product, error) {
	var p models.Product
	err := m.products.FindOne(ctx, bson.D{{Key: "productId", Value: productID}}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (m *Mongo) InsertProduct(ctx context.Context, p *models.Product) error {
	res, err := m.products.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	setObjectID(&p.ID, res.InsertedID)
	return nil
}

func (m *Mongo) ReplaceProduct(ctx context.Context, p *models.Product) error {
	_, err := m.products.ReplaceOne(ctx, bson.D{{Key: "productId", Value: p.ProductID}}, p)
	return err
}

func (m *Mongo) DeleteProduct(ctx context.Context, productID int) (bool, error) {
	res, err := m.products.DeleteOne(ctx, bson.D{{Key: "productId", Value: productID}})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (m *Mongo) CountProducts(ctx context.Context) (int64, error) {
	return m.products.CountDocuments(ctx, bson.D{})
}

func (m *Mongo) MaxProductID(ctx context.Context) (int, error) {
	var p models.Product
	err := m.products.FindOne(ctx, bson.D{},
		options.FindOne().SetSort(bson.D{{Key: "productId", Value: -1}})).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return p.ProductID, nil
}
