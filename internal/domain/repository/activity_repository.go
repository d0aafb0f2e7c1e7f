package repository

import (
	"context"

	"github.com/devasif/smart-task-management/internal/domain/entity"
)

type ActivityRepository interface {
	Insert(ctx context.Context, a *entity.Activity) error
	// ListByActor returns the actor's most recent entries, newest first.
	ListByActor(ctx context.Context, actor string, limit int64) ([]entity.Activity, error)
}
