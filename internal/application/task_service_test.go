package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devasif/smart-task-management/internal/domain/entity"
)

func TestTaskService_CreateStartsPending(t *testing.T) {
	tasks := newFakeTaskRepo()
	pub := &fakePublisher{}
	svc := NewTaskService(tasks, pub, nil)

	id, err := svc.Create(context.Background(), "alice@example.com", CreateTaskInput{
		Project:      "P1",
		Title:        "write docs",
		AssignMember: "A",
		Priority:     "high",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.Equal(t, entity.StatusPending, tasks.tasks[id].Status)
	require.Len(t, pub.events, 1)

	ev, ok := pub.events[0].(ActivityEvent)
	require.True(t, ok)
	require.Equal(t, "alice@example.com", ev.Actor)
	require.Equal(t, "task.created", ev.Action)
}

func TestTaskService_DeleteMissingIsSoftFailure(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo(), nil, nil)

	n, err := svc.Delete(context.Background(), "alice@example.com", "no-such-id")
	require.NoError(t, err)
	require.EqualValues(t, 0, n)
}

func TestTaskService_SetStatusUnchecked(t *testing.T) {
	tasks := newFakeTaskRepo()
	svc := NewTaskService(tasks, nil, nil)
	ctx := context.Background()

	id, err := svc.Create(ctx, "alice@example.com", CreateTaskInput{Project: "P1", Title: "t"})
	require.NoError(t, err)

	// any string goes through, including moving done back to pending
	for _, status := range []string{entity.StatusDone, entity.StatusPending, "blocked"} {
		n, err := svc.SetStatus(ctx, "alice@example.com", id, status)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)
		require.Equal(t, status, tasks.tasks[id].Status)
	}
}

func TestTaskService_UpdateFieldsOverwrites(t *testing.T) {
	tasks := newFakeTaskRepo()
	svc := NewTaskService(tasks, nil, nil)
	ctx := context.Background()

	id, err := svc.Create(ctx, "alice@example.com", CreateTaskInput{
		Project: "P1", Title: "old", Description: "old desc", Priority: "low",
	})
	require.NoError(t, err)

	n, err := svc.UpdateFields(ctx, "alice@example.com", id, "new", "new desc", "high")
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
	require.Equal(t, "new", tasks.tasks[id].Title)
	require.Equal(t, "new desc", tasks.tasks[id].Description)
	require.Equal(t, "high", tasks.tasks[id].Priority)
}

func TestTaskService_PublisherFailureDoesNotFailRequest(t *testing.T) {
	tasks := newFakeTaskRepo()
	pub := &fakePublisher{err: errors.New("broker down")}
	svc := NewTaskService(tasks, pub, nil)

	id, err := svc.Create(context.Background(), "alice@example.com", CreateTaskInput{Project: "P1", Title: "t"})
	require.NoError(t, err)
	require.NotEmpty(t, id)
}
