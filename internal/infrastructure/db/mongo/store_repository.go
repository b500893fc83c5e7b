package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/commercekit/customer-system/internal/core/domain"
)

const storesCollection = "stores"

// StoreRepository implements ports.StoreRepository on the stores collection.
type StoreRepository struct {
	coll *mongo.Collection
}

func NewStoreRepository(db *mongo.Database) *StoreRepository {
	return &StoreRepository{coll: db.Collection(storesCollection)}
}

type mongoStore struct {
	ID        int64  `bson:"_id"`
	WebsiteID int64  `bson:"website_id"`
	Code      string `bson:"code"`
	Name      string `bson:"name"`
}

func (r *StoreRepository) FindByCode(ctx context.Context, code string) (*domain.Store, error) {
	var ms mongoStore
	if err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&ms); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: %q", domain.ErrStoreNotFound, code)
		}
		return nil, fmt.Errorf("find store: %w", err)
	}

	return &domain.Store{
		ID:        ms.ID,
		WebsiteID: ms.WebsiteID,
		Code:      ms.Code,
		Name:      ms.Name,
	}, nil
}

// EnsureDefault creates the default store scope when the collection is empty,
// so a fresh deployment can accept registrations immediately.
func (r *StoreRepository) EnsureDefault(ctx context.Context, code string) error {
	filter := bson.M{"_id": int64(1)}
	update := bson.M{"$setOnInsert": bson.M{
		"website_id": int64(1),
		"code":       code,
		"name":       "Default Store",
	}}

	if _, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("ensure default store: %w", err)
	}
	return nil
}
