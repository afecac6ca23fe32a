package iostatusdb

import (
	"context"
	"errors"

	"github.com/gnames/ngireports/pkg/config"
	"github.com/gnames/ngireports/pkg/statusdb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// mongoConnector reads project documents from a MongoDB collection.
// Documents are matched by their project_id field.
type mongoConnector struct {
	cfg config.StatusDBConfig
	settings
}

type mongoConn struct {
	client   *mongo.Client
	coll     *mongo.Collection
	writable bool
}

// Connect opens a MongoDB client and pings the primary.
func (c *mongoConnector) Connect(
	ctx context.Context,
) (statusdb.Connection, error) {
	ctx, cancel := withTimeout(ctx, c.cfg)
	defer cancel()

	opts := options.Client().ApplyURI(c.cfg.URI)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, ConnectionError(c.cfg.Backend, c.cfg.URI, err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, ConnectionError(c.cfg.Backend, c.cfg.URI, err)
	}

	coll := client.Database(c.cfg.Database).Collection(c.cfg.Collection)
	res := &mongoConn{
		client:   client,
		coll:     coll,
		writable: c.writable,
	}
	return res, nil
}

// GetEntry returns the project document or nil if it does not exist.
func (m *mongoConn) GetEntry(
	ctx context.Context,
	projectID string,
) (*statusdb.ProjectDocument, error) {
	if m.client == nil {
		return nil, NotConnectedError()
	}

	var res statusdb.ProjectDocument
	err := m.coll.FindOne(ctx, bson.M{"project_id": projectID}).Decode(&res)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, QueryError(projectID, err)
	}
	return &res, nil
}

// Put replaces the document with the same project_id or inserts it.
func (m *mongoConn) Put(
	ctx context.Context,
	doc *statusdb.ProjectDocument,
) error {
	if !m.writable {
		return ReadOnlyError(config.BackendMongo)
	}
	if m.client == nil {
		return NotConnectedError()
	}

	_, err := m.coll.ReplaceOne(
		ctx,
		bson.M{"project_id": doc.ProjectID},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return WriteError(doc.ProjectID, err)
	}
	return nil
}

// Close disconnects the client.
func (m *mongoConn) Close() error {
	if m.client == nil {
		return nil
	}
	err := m.client.Disconnect(context.Background())
	m.client = nil
	return err
}
