package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	productsCollection  = "Products"
	customersCollection = "Customers"
	ordersCollection    = "Orders"
	cartsCollection     = "ShoppingCarts"
)

// Mongo implements Store on a MongoDB database.
type Mongo struct {
	client    *mongo.Client
	products  *mongo.Collection
	customers *mongo.Collection
	orders    *mongo.Collection
	carts     *mongo.Collection
}

var _ Store = (*Mongo)(nil)

// Connect dials MongoDB, verifies the connection and returns a Store bound to
// dbName. The decimal codec is registered on the client so all collections
// share it.
func Connect(ctx context.Context, uri, dbName string) (*Mongo, error) {
	reg := bson.NewRegistry()
	registerDecimalCodec(reg)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetRegistry(reg))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	db := client.Database(dbName)
	return &Mongo{
		client:    client,
		products:  db.Collection(productsCollection),
		customers: db.Collection(customersCollection),
		orders:    db.Collection(ordersCollection),
		carts:     db.Collection(cartsCollection),
	}, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// EnsureIndexes creates the index set the API relies on: unique business ids
// per collection, a unique customer email, a unique cart per customer, and
// secondary indexes for the category and customer-order queries.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	_, err := m.products.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "productId", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	})
	if err != nil {
		return err
	}

	_, err = m.customers.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "customerId", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return err
	}

	_, err = m.orders.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "orderId", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "customerId", Value: 1}}},
		{Keys: bson.D{{Key: "orderDate", Value: 1}}},
	})
	if err != nil {
		return err
	}

	_, err = m.carts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "customerId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
