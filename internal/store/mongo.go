package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoConfig holds what is needed to reach a MongoDB database.
type MongoConfig struct {
	URL            string
	DatabaseName   string
	ConnectTimeout time.Duration
}

// Mongo is a Store backed by MongoDB. The connection is attempted exactly
// once, in ConnectMongo; afterwards the handle and status are read-only.
type Mongo struct {
	status Status
	detail string
	db     *mongo.Database
}

// ConnectMongo establishes the MongoDB connection described by cfg. It never
// returns an error: a missing URL yields an unconfigured store and a failed
// connection or ping yields an unavailable one, so callers can always start
// and report the state through diagnostics.
func ConnectMongo(ctx context.Context, cfg MongoConfig) *Mongo {
	if cfg.URL == "" {
		return &Mongo{status: StatusUnconfigured}
	}

	timeout := cfg.ConnectTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return &Mongo{status: StatusUnavailable, detail: err.Error()}
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, timeout)
	defer pingCancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return &Mongo{status: StatusUnavailable, detail: err.Error()}
	}

	return &Mongo{
		status: StatusConnected,
		db:     client.Database(cfg.DatabaseName),
	}
}

func (m *Mongo) Status() Status {
	return m.status
}

func (m *Mongo) StatusDetail() string {
	return m.detail
}

func (m *Mongo) DatabaseName() string {
	if m.db == nil {
		return ""
	}
	return m.db.Name()
}

// ready gates every data operation on the startup connectivity state.
func (m *Mongo) ready() error {
	switch m.status {
	case StatusConnected:
		return nil
	case StatusUnavailable:
		return ErrUnavailable
	default:
		return ErrNotConfigured
	}
}

func (m *Mongo) Insert(ctx context.Context, collection string, doc any) (string, error) {
	if err := m.ready(); err != nil {
		return "", err
	}

	result, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", errors.Wrapf(err, "insert into %s", collection)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return "", errors.Errorf("insert into %s: unexpected identifier type %T", collection, result.InsertedID)
}

func (m *Mongo) Find(ctx context.Context, collection string, filter Document) ([]Document, error) {
	if err := m.ready(); err != nil {
		return nil, err
	}

	cursor, err := m.db.Collection(collection).Find(ctx, toBSON(filter))
	if err != nil {
		return nil, errors.Wrapf(err, "find in %s", collection)
	}
	defer cursor.Close(ctx)

	var docs []Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrapf(err, "decode documents from %s", collection)
	}
	if docs == nil {
		docs = []Document{}
	}
	return docs, nil
}

func (m *Mongo) Count(ctx context.Context, collection string, filter Document) (int64, error) {
	if err := m.ready(); err != nil {
		return 0, err
	}

	count, err := m.db.Collection(collection).CountDocuments(ctx, toBSON(filter))
	if err != nil {
		return 0, errors.Wrapf(err, "count in %s", collection)
	}
	return count, nil
}

func (m *Mongo) CollectionNames(ctx context.Context, limit int) ([]string, error) {
	if err := m.ready(); err != nil {
		return nil, err
	}

	names, err := m.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "list collection names")
	}
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

func toBSON(filter Document) bson.M {
	if filter == nil {
		return bson.M{}
	}
	return bson.M(filter)
}
