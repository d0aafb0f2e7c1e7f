package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devasif/smart-task-management/internal/domain/entity"
)

func TestTeamService_CreateEmitsActivity(t *testing.T) {
	teams := &fakeTeamRepo{}
	pub := &fakePublisher{}
	svc := NewTeamService(teams, pub, nil)

	id, err := svc.Create(context.Background(), "alice@example.com", "backend")
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.Len(t, teams.teams, 1)
	require.Empty(t, teams.teams[0].Members, "new teams start with no members")
	require.Len(t, pub.events, 1)
}

func TestTeamService_AddMemberUnknownTeam(t *testing.T) {
	pub := &fakePublisher{}
	svc := NewTeamService(&fakeTeamRepo{}, pub, nil)

	n, err := svc.AddMember(context.Background(), "alice@example.com", "missing", entity.Member{Name: "A"})
	require.NoError(t, err)
	require.EqualValues(t, 0, n)
	require.Empty(t, pub.events, "no activity for a no-op mutation")
}

func TestTeamService_AddMemberAppends(t *testing.T) {
	teams := &fakeTeamRepo{teams: []entity.Team{{Name: "backend", Owner: "alice@example.com"}}}
	svc := NewTeamService(teams, nil, nil)

	n, err := svc.AddMember(context.Background(), "alice@example.com", "backend", entity.Member{Name: "A", Role: "dev", Capacity: 4})
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
	require.Len(t, teams.teams[0].Members, 1)
	require.Equal(t, 4, teams.teams[0].Members[0].Capacity)
}
