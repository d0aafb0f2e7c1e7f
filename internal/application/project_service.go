package application

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	repo "github.com/devasif/smart-task-management/internal/domain/repository"
)

type ProjectService struct {
	Projects repo.ProjectRepository
	Pub      ActivityPublisher
	Logger   *logrus.Logger
}

func NewProjectService(projects repo.ProjectRepository, pub ActivityPublisher, logger *logrus.Logger) *ProjectService {
	return &ProjectService{Projects: projects, Pub: pub, Logger: logger}
}

// Create stores the caller's fields as-is, stamping owner and createdAt on
// the server side. Owner and creation time always win over client values.
func (s *ProjectService) Create(ctx context.Context, owner string, fields map[string]any) (string, error) {
	if fields == nil {
		fields = map[string]any{}
	}
	fields["owner"] = owner
	fields["createdAt"] = time.Now().UTC()

	id, err := s.Projects.Create(ctx, fields)
	if err != nil {
		return "", err
	}
	publishActivity(ctx, s.Pub, s.Logger, owner, "project.created", fmt.Sprintf("%v", fields["name"]))
	return id, nil
}

func (s *ProjectService) ListByOwner(ctx context.Context, owner string) ([]map[string]any, error) {
	return s.Projects.ListByOwner(ctx, owner)
}
