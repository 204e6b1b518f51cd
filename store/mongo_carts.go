package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sweetstore/sweetstore-api/models"
)

func (m *Mongo) GetCart(ctx context.Context, customerID int) (*models.ShoppingCart, error) {
	var c models.ShoppingCart
	err := m.carts.FindOne(ctx, bson.D{{Key: "customerId", Value: customerID}}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (m *Mongo) InsertCart(ctx context.Context, c *models.ShoppingCart) error {
	res, err := m.carts.InsertOne(ctx, c)
	if err != nil {
		return err
	}
	setObjectID(&c.ID, res.InsertedID)
	return nil
}

func (m *Mongo) ReplaceCart(ctx context.Context, c *models.ShoppingCart) error {
	_, err := m.carts.ReplaceOne(ctx, bson.D{{Key: "customerId", Value: c.CustomerID}}, c)
	return err
}
