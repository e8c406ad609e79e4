package store

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/floorsmith/pkg/errors"
)

// DefaultMongoCollection is the collection projects are stored in.
const DefaultMongoCollection = "projects"

// MongoStore persists projects as documents in a MongoDB collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
	now    func() time.Time
}

// ConnectMongo dials uri and pings the primary before returning.
func ConnectMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "connect mongo")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "ping mongo")
	}
	return NewMongoStore(client, database), nil
}

// NewMongoStore wraps an existing client. Close disconnects it.
func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(DefaultMongoCollection),
		now:    time.Now,
	}
}

func (s *MongoStore) Create(ctx context.Context, p *Project) error {
	if err := prepareCreate(p, s.now()); err != nil {
		return err
	}
	if _, err := s.coll.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "project %s already exists", p.ID)
		}
		return fmt.Errorf("insert project %s: %w", p.ID, err)
	}
	return nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (*Project, error) {
	var p Project
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("find project %s: %w", id, err)
	}
	return &p, nil
}

func (s *MongoStore) Save(ctx context.Context, p *Project) error {
	updated := s.now().UTC().Truncate(time.Millisecond)
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": p.ID}, bson.M{"$set": bson.M{
		"name":       p.Name,
		"variant":    p.Variant,
		"program":    p.Program,
		"document":   p.Document,
		"updated_at": updated,
	}})
	if err != nil {
		return fmt.Errorf("update project %s: %w", p.ID, err)
	}
	if res.MatchedCount == 0 {
		return notFound(p.ID)
	}
	p.UpdatedAt = updated
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return notFound(id)
	}
	return nil
}

func (s *MongoStore) List(ctx context.Context) ([]*Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cur.Close(ctx)

	out := []*Project{}
	for cur.Next(ctx) {
		var p Project
		if err := cur.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		out = append(out, &p)
	}
	return out, cur.Err()
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
