package repository

import "context"

// ProjectRepository stores schemaless project documents: callers may attach
// arbitrary fields beyond owner, name and createdAt.
type ProjectRepository interface {
	Create(ctx context.Context, fields map[string]any) (string, error)
	ListByOwner(ctx context.Context, owner string) ([]map[string]any, error)
	// NamesByOwner returns only the name field of the owner's projects.
	NamesByOwner(ctx context.Context, owner string) ([]string, error)
}
