package application

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/devasif/smart-task-management/internal/domain/entity"
	repo "github.com/devasif/smart-task-management/internal/domain/repository"
	"github.com/devasif/smart-task-management/pkg/helpers"
)

const summaryCacheKey = "insights:team-summary"

// InsightsService computes derived views with sequential dependent queries.
// The reads are not wrapped in a transaction: concurrent writers can be
// observed or missed between sub-queries.
type InsightsService struct {
	Teams    repo.TeamRepository
	Projects repo.ProjectRepository
	Tasks    repo.TaskRepository
	Redis    *redis.Client
	CacheTTL time.Duration
	Logger   *logrus.Logger
}

func NewInsightsService(teams repo.TeamRepository, projects repo.ProjectRepository, tasks repo.TaskRepository, rdb *redis.Client, cacheTTL time.Duration, logger *logrus.Logger) *InsightsService {
	return &InsightsService{Teams: teams, Projects: projects, Tasks: tasks, Redis: rdb, CacheTTL: cacheTTL, Logger: logger}
}

// MembersWithLoad returns the team's members in stored order, each with the
// count of their open (not done) tasks attached. A team with no members is
// an empty result, not an error.
func (s *InsightsService) MembersWithLoad(ctx context.Context, teamName string) ([]entity.Member, error) {
	team, err := s.Teams.GetByName(ctx, teamName)
	if err != nil {
		return nil, err
	}
	members := team.Members
	for i := range members {
		n, err := s.Tasks.CountOpenByAssignee(ctx, members[i].Name)
		if err != nil {
			return nil, err
		}
		members[i].CurrentTask = n
	}
	return members, nil
}

// MemberSummary is one row of the cross-team rollup.
type MemberSummary struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	Capacity  int    `json:"capacity"`
	TaskCount int64  `json:"taskCount"`
	Team      string `json:"team"`
}

// TeamSummary flattens every team's members and counts all tasks assigned
// to each, re-resolving the member's team by name. When the same member
// name exists in two teams the resolution takes the first match; that
// ambiguity is inherent to name-keyed membership and is not corrected here.
// Results are cached briefly since this walks the entire store.
func (s *InsightsService) TeamSummary(ctx context.Context) ([]MemberSummary, error) {
	if s.Redis != nil {
		var cached []MemberSummary
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, summaryCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	teams, err := s.Teams.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := []MemberSummary{}
	for _, team := range teams {
		for _, m := range team.Members {
			n, err := s.Tasks.CountByAssignee(ctx, m.Name)
			if err != nil {
				return nil, err
			}
			row := MemberSummary{Name: m.Name, Role: m.Role, Capacity: m.Capacity, TaskCount: n}
			owning, err := s.Teams.FindByMemberName(ctx, m.Name)
			if err != nil && !errors.Is(err, repo.ErrNotFound) {
				return nil, err
			}
			if owning != nil {
				row.Team = owning.Name
			}
			out = append(out, row)
		}
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, summaryCacheKey, out, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("summary cache write failed")
		}
	}
	return out, nil
}

type Totals struct {
	ProjectCount int   `json:"projectCount"`
	TaskCount    int64 `json:"taskCount"`
}

// Totals counts the owner's projects and every task filed under any of
// those project names.
func (s *InsightsService) Totals(ctx context.Context, owner string) (Totals, error) {
	names, err := s.Projects.NamesByOwner(ctx, owner)
	if err != nil {
		return Totals{}, err
	}
	tasks, err := s.Tasks.CountByProjects(ctx, names)
	if err != nil {
		return Totals{}, err
	}
	return Totals{ProjectCount: len(names), TaskCount: tasks}, nil
}
