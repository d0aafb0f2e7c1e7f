package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/devasif/smart-task-management/internal/domain/entity"
	repo "github.com/devasif/smart-task-management/internal/domain/repository"
)

type TaskService struct {
	Tasks  repo.TaskRepository
	Pub    ActivityPublisher
	Logger *logrus.Logger
}

func NewTaskService(tasks repo.TaskRepository, pub ActivityPublisher, logger *logrus.Logger) *TaskService {
	return &TaskService{Tasks: tasks, Pub: pub, Logger: logger}
}

type CreateTaskInput struct {
	Project      string
	Title        string
	Description  string
	AssignMember string
	Priority     string
}

func (s *TaskService) Create(ctx context.Context, owner string, in CreateTaskInput) (string, error) {
	t := &entity.Task{
		Owner:        owner,
		Project:      in.Project,
		Title:        in.Title,
		Description:  in.Description,
		AssignMember: in.AssignMember,
		Priority:     in.Priority,
		Status:       entity.StatusPending,
	}
	id, err := s.Tasks.Create(ctx, t)
	if err != nil {
		return "", err
	}
	publishActivity(ctx, s.Pub, s.Logger, owner, "task.created", in.Title)
	return id, nil
}

func (s *TaskService) ListByOwner(ctx context.Context, owner string) ([]entity.Task, error) {
	return s.Tasks.ListByOwner(ctx, owner)
}

func (s *TaskService) Delete(ctx context.Context, actor, id string) (int64, error) {
	n, err := s.Tasks.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		publishActivity(ctx, s.Pub, s.Logger, actor, "task.deleted", id)
	}
	return n, nil
}

// SetStatus accepts any non-empty status string; there is no transition
// table, so moves like done back to pending go through unchecked.
func (s *TaskService) SetStatus(ctx context.Context, actor, id, status string) (int64, error) {
	n, err := s.Tasks.SetStatus(ctx, id, status)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		publishActivity(ctx, s.Pub, s.Logger, actor, "task.status_changed", status)
	}
	return n, nil
}

func (s *TaskService) UpdateFields(ctx context.Context, actor, id, title, description, priority string) (int64, error) {
	n, err := s.Tasks.UpdateFields(ctx, id, title, description, priority)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		publishActivity(ctx, s.Pub, s.Logger, actor, "task.updated", title)
	}
	return n, nil
}
