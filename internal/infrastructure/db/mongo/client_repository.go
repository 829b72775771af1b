package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/infilects/client-admin/internal/core/domain"
)

const clientsCollection = "clients"

// ClientRepository implements ports.ClientRepository backed by the clients collection.
type ClientRepository struct {
	coll *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{coll: db.Collection(clientsCollection)}
}

type clientDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Email          string             `bson:"email"`
	Company        string             `bson:"company"`
	Status         string             `bson:"status"`
	AssignedUserID *string            `bson:"assigned_user_id"`
	Notes          string             `bson:"notes"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

func (d clientDoc) toDomain() *domain.Client {
	return &domain.Client{
		ID:             d.ID.Hex(),
		Name:           d.Name,
		Email:          d.Email,
		Company:        d.Company,
		Status:         domain.ClientStatus(d.Status),
		AssignedUserID: d.AssignedUserID,
		Notes:          d.Notes,
		CreatedAt:      d.CreatedAt.UTC(),
		UpdatedAt:      d.UpdatedAt.UTC(),
	}
}

func clientID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrClientNotFound
	}
	return oid, nil
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := clientDoc{
		Name:           client.Name,
		Email:          client.Email,
		Company:        client.Company,
		Status:         string(client.Status),
		AssignedUserID: client.AssignedUserID,
		Notes:          client.Notes,
		CreatedAt:      client.CreatedAt,
		UpdatedAt:      client.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert client: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	oid, err := clientID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc clientDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns all clients, newest first.
func (r *ClientRepository) List(ctx context.Context) ([]*domain.Client, error) {
	return r.list(ctx, bson.M{})
}

// ListByAssignedUser returns the clients owned by userID, newest first.
func (r *ClientRepository) ListByAssignedUser(ctx context.Context, userID string) ([]*domain.Client, error) {
	return r.list(ctx, bson.M{"assigned_user_id": userID})
}

func (r *ClientRepository) list(ctx context.Context, filter bson.M) ([]*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer cur.Close(ctx)

	var docs []clientDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode clients: %w", err)
	}

	out := make([]*domain.Client, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, nil
}

// SetAssignedUser updates the owner pointer (nil clears it) and returns the
// post-update record.
func (r *ClientRepository) SetAssignedUser(ctx context.Context, id string, userID *string) (*domain.Client, error) {
	oid, err := clientID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"assigned_user_id": userID,
		"updated_at":       time.Now().UTC(),
	}}

	var doc clientDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("set assigned user: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the indexes the repository relies on.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "assigned_user_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
