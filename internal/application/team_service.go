package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/devasif/smart-task-management/internal/domain/entity"
	repo "github.com/devasif/smart-task-management/internal/domain/repository"
)

type TeamService struct {
	Teams  repo.TeamRepository
	Pub    ActivityPublisher
	Logger *logrus.Logger
}

func NewTeamService(teams repo.TeamRepository, pub ActivityPublisher, logger *logrus.Logger) *TeamService {
	return &TeamService{Teams: teams, Pub: pub, Logger: logger}
}

func (s *TeamService) Create(ctx context.Context, owner, name string) (string, error) {
	id, err := s.Teams.Create(ctx, &entity.Team{Owner: owner, Name: name, Members: []entity.Member{}})
	if err != nil {
		return "", err
	}
	publishActivity(ctx, s.Pub, s.Logger, owner, "team.created", name)
	return id, nil
}

func (s *TeamService) ListByOwner(ctx context.Context, owner string) ([]entity.Team, error) {
	return s.Teams.ListByOwner(ctx, owner)
}

// AddMember appends a member to the team. A zero modified count means the
// team id matched nothing and is reported as a soft failure by the handler.
func (s *TeamService) AddMember(ctx context.Context, actor, teamID string, m entity.Member) (int64, error) {
	n, err := s.Teams.AddMember(ctx, teamID, m)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		publishActivity(ctx, s.Pub, s.Logger, actor, "team.member_added", m.Name)
	}
	return n, nil
}
