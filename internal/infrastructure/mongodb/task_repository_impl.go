package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devasif/smart-task-management/internal/domain/entity"
)

type TaskRepository struct {
	coll *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{coll: db.Collection(TasksCollection)}
}

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) (string, error) {
	if t.Status == "" {
		t.Status = entity.StatusPending
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	res, err := r.coll.InsertOne(ctx, t)
	if err != nil {
		return "", err
	}
	return insertedIDHex(res), nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, owner string) ([]entity.Task, error) {
	cur, err := r.coll.Find(ctx, bson.M{"owner": owner})
	if err != nil {
		return nil, err
	}
	tasks := []entity.Task{}
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *TaskRepository) SetStatus(ctx context.Context, id, status string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *TaskRepository) UpdateFields(ctx context.Context, id, title, description, priority string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}
	set := bson.M{
		"title":       title,
		"description": description,
		"priority":    priority,
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *TaskRepository) CountOpenByAssignee(ctx context.Context, member string) (int64, error) {
	filter := bson.M{
		"assignMember": member,
		"status":       bson.M{"$ne": entity.StatusDone},
	}
	return r.coll.CountDocuments(ctx, filter)
}

func (r *TaskRepository) CountByAssignee(ctx context.Context, member string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"assignMember": member})
}

func (r *TaskRepository) CountByProjects(ctx context.Context, projects []string) (int64, error) {
	if len(projects) == 0 {
		return 0, nil
	}
	return r.coll.CountDocuments(ctx, bson.M{"project": bson.M{"$in": projects}})
}
