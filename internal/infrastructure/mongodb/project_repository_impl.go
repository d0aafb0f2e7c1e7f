package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProjectRepository stores projects as schemaless documents so callers can
// attach arbitrary fields at creation time.
type ProjectRepository struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{coll: db.Collection(ProjectsCollection)}
}

func (r *ProjectRepository) Create(ctx context.Context, fields map[string]any) (string, error) {
	res, err := r.coll.InsertOne(ctx, bson.M(fields))
	if err != nil {
		return "", err
	}
	return insertedIDHex(res), nil
}

func (r *ProjectRepository) ListByOwner(ctx context.Context, owner string) ([]map[string]any, error) {
	cur, err := r.coll.Find(ctx, bson.M{"owner": owner})
	if err != nil {
		return nil, err
	}
	docs := []map[string]any{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *ProjectRepository) NamesByOwner(ctx context.Context, owner string) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"name": 1})
	cur, err := r.coll.Find(ctx, bson.M{"owner": owner}, opts)
	if err != nil {
		return nil, err
	}
	var docs []struct {
		Name string `bson:"name"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(docs))
	for _, d := range docs {
		names = append(names, d.Name)
	}
	return names, nil
}
