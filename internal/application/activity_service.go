package application

import (
	"context"

	"github.com/devasif/smart-task-management/internal/domain/entity"
	repo "github.com/devasif/smart-task-management/internal/domain/repository"
)

const activityFeedLimit = 50

type ActivityService struct {
	Activities repo.ActivityRepository
}

func NewActivityService(activities repo.ActivityRepository) *ActivityService {
	return &ActivityService{Activities: activities}
}

func (s *ActivityService) Feed(ctx context.Context, actor string) ([]entity.Activity, error) {
	return s.Activities.ListByActor(ctx, actor, activityFeedLimit)
}
