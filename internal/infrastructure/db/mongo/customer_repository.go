package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/commercekit/customer-system/internal/core/domain"
)

const (
	customersCollection = "customers"
	countersCollection  = "counters"
)

// CustomerRepository implements ports.CustomerRepository using MongoDB.
// Identifiers are numeric, drawn from a counter sequence, so the rest of the
// system can treat customer ids as integers.
type CustomerRepository struct {
	db *mongo.Database
}

func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{db: db}
}

type mongoCustomer struct {
	ID           int64  `bson:"_id"`
	Email        string `bson:"email"`
	Firstname    string `bson:"firstname"`
	Lastname     string `bson:"lastname"`
	Middlename   string `bson:"middlename,omitempty"`
	Prefix       string `bson:"prefix,omitempty"`
	Suffix       string `bson:"suffix,omitempty"`
	DateOfBirth  string `bson:"date_of_birth,omitempty"`
	Gender       int    `bson:"gender,omitempty"`
	Taxvat       string `bson:"taxvat,omitempty"`
	WebsiteID    int64  `bson:"website_id"`
	StoreID      int64  `bson:"store_id"`
	PasswordHash string `bson:"password_hash,omitempty"`
	CreatedAt    int64  `bson:"created_at"`
	UpdatedAt    int64  `bson:"updated_at"`
}

func (r *CustomerRepository) Insert(ctx context.Context, customer *domain.Customer, passwordHash string) (*domain.Customer, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return nil, err
	}

	doc := mongoCustomer{
		ID:           id,
		Email:        customer.Email,
		Firstname:    customer.Firstname,
		Lastname:     customer.Lastname,
		Middlename:   customer.Middlename,
		Prefix:       customer.Prefix,
		Suffix:       customer.Suffix,
		DateOfBirth:  customer.DateOfBirth,
		Gender:       customer.Gender,
		Taxvat:       customer.Taxvat,
		WebsiteID:    customer.WebsiteID,
		StoreID:      customer.StoreID,
		PasswordHash: passwordHash,
		CreatedAt:    customer.CreatedAt.Unix(),
		UpdatedAt:    customer.UpdatedAt.Unix(),
	}

	if _, err := r.db.Collection(customersCollection).InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailExists
		}
		return nil, fmt.Errorf("insert customer: %w", err)
	}

	created := *customer
	created.ID = id
	return &created, nil
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, string, error) {
	var mc mongoCustomer
	if err := r.db.Collection(customersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, "", domain.ErrCustomerNotFound
		}
		return nil, "", fmt.Errorf("find customer by email: %w", err)
	}
	return mc.toDomain(), mc.PasswordHash, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var mc mongoCustomer
	if err := r.db.Collection(customersCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer by id: %w", err)
	}
	return mc.toDomain(), nil
}

// nextID atomically increments and returns the customer id sequence.
func (r *CustomerRepository) nextID(ctx context.Context) (int64, error) {
	res := r.db.Collection(countersCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": "customer_id"},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	if err := res.Decode(&counter); err != nil {
		return 0, fmt.Errorf("next customer id: %w", err)
	}
	return counter.Seq, nil
}

func (mc mongoCustomer) toDomain() *domain.Customer {
	return &domain.Customer{
		ID:          mc.ID,
		Email:       mc.Email,
		Firstname:   mc.Firstname,
		Lastname:    mc.Lastname,
		Middlename:  mc.Middlename,
		Prefix:      mc.Prefix,
		Suffix:      mc.Suffix,
		DateOfBirth: mc.DateOfBirth,
		Gender:      mc.Gender,
		Taxvat:      mc.Taxvat,
		WebsiteID:   mc.WebsiteID,
		StoreID:     mc.StoreID,
		CreatedAt:   unixToTime(mc.CreatedAt),
		UpdatedAt:   unixToTime(mc.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
