package repository

import (
	"context"

	"github.com/devasif/smart-task-management/internal/domain/entity"
)

type TaskRepository interface {
	Create(ctx context.Context, t *entity.Task) (string, error)
	ListByOwner(ctx context.Context, owner string) ([]entity.Task, error)
	// Delete reports the number of documents removed (zero for unknown ids).
	Delete(ctx context.Context, id string) (int64, error)
	SetStatus(ctx context.Context, id, status string) (int64, error)
	UpdateFields(ctx context.Context, id, title, description, priority string) (int64, error)

	// Aggregation counts used by the insights service.
	CountOpenByAssignee(ctx context.Context, member string) (int64, error)
	CountByAssignee(ctx context.Context, member string) (int64, error)
	CountByProjects(ctx context.Context, projects []string) (int64, error)
}
