package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devasif/smart-task-management/internal/domain/entity"
)

type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(ActivitiesCollection)}
}

func (r *ActivityRepository) Insert(ctx context.Context, a *entity.Activity) error {
	if a.At.IsZero() {
		a.At = time.Now().UTC()
	}
	_, err := r.coll.InsertOne(ctx, a)
	return err
}

func (r *ActivityRepository) ListByActor(ctx context.Context, actor string, limit int64) ([]entity.Activity, error) {
	opts := options.Find().SetSort(bson.M{"at": -1}).SetLimit(limit)
	cur, err := r.coll.Find(ctx, bson.M{"actor": actor}, opts)
	if err != nil {
		return nil, err
	}
	acts := []entity.Activity{}
	if err := cur.All(ctx, &acts); err != nil {
		return nil, err
	}
	return acts, nil
}
