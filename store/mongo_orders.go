package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sweetstore/sweetstore-api/models"
)

func (m *Mongo) ListOrders(ctx context.Context) ([]models.Order, error) {
	return decodeAll[models.Order](ctx, m.orders, bson.D{})
}

func (m *Mongo) ListOrdersByCustomer(ctx context.Context, customerID int) ([]models.Order, error) {
	return decodeAll[models.Order](ctx, m.orders, bson.D{{Key: "customerId", Value: customerID}})
}

func (m *Mongo) GetOrder(ctx context.Context, orderID int) (*models.Order, error) {
	var o models.Order
	err := m.orders.FindOne(ctx, bson.D{{Key: "orderId", Value: orderID}}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (m *Mongo) InsertOrder(ctx context.Context, o *models.Order) error {
	res, err := m.orders.InsertOne(ctx, o)
	if err != nil {
		return err
	}
	setObjectID(&o.ID, res.InsertedID)
	return nil
}

func (m *Mongo) SetOrderStatus(ctx context.Context, orderID int, status models.OrderStatus) (bool, error) {
	res, err := m.orders.UpdateOne(ctx,
		bson.D{{Key: "orderId", Value: orderID}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: status}}}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (m *Mongo) MaxOrderID(ctx context.Context) (int, error) {
	var o models.Order
	err := m.orders.FindOne(ctx, bson.D{},
		options.FindOne().SetSort(bson.D{{Key: "orderId", Value: -1}})).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return o.OrderID, nil
}
