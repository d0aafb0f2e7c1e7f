package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devasif/smart-task-management/internal/domain/entity"
	"github.com/devasif/smart-task-management/internal/domain/repository"
)

type TeamRepository struct {
	coll *mongo.Collection
}

func NewTeamRepository(db *mongo.Database) *TeamRepository {
	return &TeamRepository{coll: db.Collection(TeamsCollection)}
}

func (r *TeamRepository) Create(ctx context.Context, t *entity.Team) (string, error) {
	if t.Members == nil {
		t.Members = []entity.Member{}
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

func (r *TeamRepository) ListByOwner(ctx context.Context, owner string) ([]entity.Team, error) {
	cur, err := r.coll.Find(ctx, bson.M{"owner": owner})
	if err != nil {
		return nil, err
	}
	teams := []entity.Team{}
	if err := cur.All(ctx, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (*entity.Team, error) {
	t := &entity.Team{}
	err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TeamRepository) AddMember(ctx context.Context, id string, m entity.Member) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// malformed ids match nothing
		return 0, nil
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$push": bson.M{"members": m}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *TeamRepository) ListAll(ctx context.Context) ([]entity.Team, error) {
	opts := options.Find().SetProjection(bson.M{"name": 1, "members": 1})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	teams := []entity.Team{}
	if err := cur.All(ctx, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *TeamRepository) FindByMemberName(ctx context.Context, memberName string) (*entity.Team, error) {
	t := &entity.Team{}
	opts := options.FindOne().SetProjection(bson.M{"name": 1, "owner": 1})
	err := r.coll.FindOne(ctx, bson.M{"members.name": memberName}, opts).Decode(t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}
