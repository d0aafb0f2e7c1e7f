package application

import (
	"context"
	"fmt"

	"github.com/devasif/smart-task-management/internal/domain/entity"
	repo "github.com/devasif/smart-task-management/internal/domain/repository"
)

// In-memory fakes over the repository interfaces. Setting err makes every
// call fail, to exercise the storage-error paths.

type fakeUserRepo struct {
	users map[string]*entity.User
	err   error
	calls int
}

var _ repo.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	f.users[u.Email] = u
	return fmt.Sprintf("id-%d", len(f.users)), nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[email]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return u, nil
}

type fakeTeamRepo struct {
	teams []entity.Team
	err   error
}

var _ repo.TeamRepository = (*fakeTeamRepo)(nil)

func (f *fakeTeamRepo) Create(_ context.Context, t *entity.Team) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.teams = append(f.teams, *t)
	return fmt.Sprintf("team-%d", len(f.teams)), nil
}

func (f *fakeTeamRepo) ListByOwner(_ context.Context, owner string) ([]entity.Team, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []entity.Team{}
	for _, t := range f.teams {
		if t.Owner == owner {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTeamRepo) GetByName(_ context.Context, name string) (*entity.Team, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.teams {
		if f.teams[i].Name == name {
			t := f.teams[i]
			return &t, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeTeamRepo) AddMember(_ context.Context, id string, m entity.Member) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	for i := range f.teams {
		if f.teams[i].Name == id {
			f.teams[i].Members = append(f.teams[i].Members, m)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeTeamRepo) ListAll(_ context.Context) ([]entity.Team, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]entity.Team{}, f.teams...), nil
}

func (f *fakeTeamRepo) FindByMemberName(_ context.Context, memberName string) (*entity.Team, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.teams {
		for _, m := range f.teams[i].Members {
			if m.Name == memberName {
				t := f.teams[i]
				return &t, nil
			}
		}
	}
	return nil, repo.ErrNotFound
}

type fakeProjectRepo struct {
	docs []map[string]any
	err  error
}

var _ repo.ProjectRepository = (*fakeProjectRepo)(nil)

func (f *fakeProjectRepo) Create(_ context.Context, fields map[string]any) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.docs = append(f.docs, fields)
	return fmt.Sprintf("project-%d", len(f.docs)), nil
}

func (f *fakeProjectRepo) ListByOwner(_ context.Context, owner string) ([]map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []map[string]any{}
	for _, d := range f.docs {
		if d["owner"] == owner {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) NamesByOwner(_ context.Context, owner string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	names := []string{}
	for _, d := range f.docs {
		if d["owner"] == owner {
			names = append(names, fmt.Sprintf("%v", d["name"]))
		}
	}
	return names, nil
}

type fakeTaskRepo struct {
	tasks  map[string]entity.Task
	nextID int
	err    error
}

var _ repo.TaskRepository = (*fakeTaskRepo)(nil)

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[string]entity.Task{}}
}

func (f *fakeTaskRepo) add(t entity.Task) string {
	f.nextID++
	id := fmt.Sprintf("task-%d", f.nextID)
	f.tasks[id] = t
	return id
}

func (f *fakeTaskRepo) Create(_ context.Context, t *entity.Task) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if t.Status == "" {
		t.Status = entity.StatusPending
	}
	return f.add(*t), nil
}

func (f *fakeTaskRepo) ListByOwner(_ context.Context, owner string) ([]entity.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []entity.Task{}
	for _, t := range f.tasks {
		if t.Owner == owner {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) Delete(_ context.Context, id string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.tasks[id]; !ok {
		return 0, nil
	}
	delete(f.tasks, id)
	return 1, nil
}

func (f *fakeTaskRepo) SetStatus(_ context.Context, id, status string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	t, ok := f.tasks[id]
	if !ok {
		return 0, nil
	}
	t.Status = status
	f.tasks[id] = t
	return 1, nil
}

func (f *fakeTaskRepo) UpdateFields(_ context.Context, id, title, description, priority string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	t, ok := f.tasks[id]
	if !ok {
		return 0, nil
	}
	t.Title, t.Description, t.Priority = title, description, priority
	f.tasks[id] = t
	return 1, nil
}

func (f *fakeTaskRepo) CountOpenByAssignee(_ context.Context, member string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, t := range f.tasks {
		if t.AssignMember == member && t.Status != entity.StatusDone {
			n++
		}
	}
	return n, nil
}

func (f *fakeTaskRepo) CountByAssignee(_ context.Context, member string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, t := range f.tasks {
		if t.AssignMember == member {
			n++
		}
	}
	return n, nil
}

func (f *fakeTaskRepo) CountByProjects(_ context.Context, projects []string) (int64, error) {
	// mirrors the mongo implementation: an empty name set never hits the store
	if len(projects) == 0 {
		return 0, nil
	}
	if f.err != nil {
		return 0, f.err
	}
	set := map[string]bool{}
	for _, p := range projects {
		set[p] = true
	}
	var n int64
	for _, t := range f.tasks {
		if set[t.Project] {
			n++
		}
	}
	return n, nil
}

type fakePublisher struct {
	events []any
	err    error
}

func (f *fakePublisher) PublishJSON(_ context.Context, body any) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, body)
	return nil
}
