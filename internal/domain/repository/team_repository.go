package repository

import (
	"context"

	"github.com/devasif/smart-task-management/internal/domain/entity"
)

type TeamRepository interface {
	Create(ctx context.Context, t *entity.Team) (string, error)
	ListByOwner(ctx context.Context, owner string) ([]entity.Team, error)
	GetByName(ctx context.Context, name string) (*entity.Team, error)
	// AddMember appends to the team's member list and reports the number
	// of documents modified (zero when the team id does not exist).
	AddMember(ctx context.Context, id string, m entity.Member) (int64, error)
	// ListAll returns every team with only name and members projected.
	// This is a cross-tenant read used by the team summary.
	ListAll(ctx context.Context) ([]entity.Team, error)
	// FindByMemberName resolves the first team containing a member with the
	// given name. Duplicate member names across teams resolve arbitrarily.
	FindByMemberName(ctx context.Context, memberName string) (*entity.Team, error)
}
