package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sweetstore/sweetstore-api/models"
)

func (m *Mongo) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return decodeAll[models.Customer](ctx, m.customers, bson.D{})
}

func (m *Mongo) GetCustomer(ctx context.Context, customerID int) (*models.Customer, error) {
	var c models.Customer
	err := m.customers.FindOne(ctx, bson.D{{Key: "customerId", Value: customerID}}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (m *Mongo) InsertCustomer(ctx context.Context, c *models.Customer) error {
	res, err := m.customers.InsertOne(ctx, c)
	if err != nil {
		return err
	}
	setObjectID(&c.ID, res.InsertedID)
	return nil
}

func (m *Mongo) MaxCustomerID(ctx context.Context) (int, error) {
	var c models.Customer
	err := m.customers.FindOne(ctx, bson.D{},
		options.FindOne().SetSort(bson.D{{Key: "customerId", Value: -1}})).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return c.CustomerID, nil
}
