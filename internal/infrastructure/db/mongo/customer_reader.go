package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/commercekit/customer-system/internal/core/domain"
	"github.com/commercekit/customer-system/internal/core/ports"
)

// CustomerReader assembles the externally visible customer representation from
// persisted state: the customer document plus the newsletter status. The view
// is always a fresh read, so server-assigned fields are present and the
// password hash never leaves this package.
type CustomerReader struct {
	db *mongo.Database
}

func NewCustomerReader(db *mongo.Database) *CustomerReader {
	return &CustomerReader{db: db}
}

func (r *CustomerReader) GetByID(ctx context.Context, id int64) (*ports.CustomerView, error) {
	var mc mongoCustomer
	if err := r.db.Collection(customersCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("read customer: %w", err)
	}

	subscribed, err := r.isSubscribed(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ports.CustomerView{
		ID:           mc.ID,
		Email:        mc.Email,
		Firstname:    mc.Firstname,
		Lastname:     mc.Lastname,
		Middlename:   mc.Middlename,
		Prefix:       mc.Prefix,
		Suffix:       mc.Suffix,
		DateOfBirth:  mc.DateOfBirth,
		Gender:       mc.Gender,
		Taxvat:       mc.Taxvat,
		WebsiteID:    mc.WebsiteID,
		StoreID:      mc.StoreID,
		CreatedAt:    unixToTime(mc.CreatedAt),
		IsSubscribed: subscribed,
	}, nil
}

func (r *CustomerReader) isSubscribed(ctx context.Context, id int64) (bool, error) {
	filter := bson.M{"customer_id": id, "status": subscriberStatusSubscribed}
	n, err := r.db.Collection(subscribersCollection).CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("read newsletter status: %w", err)
	}
	return n > 0, nil
}
