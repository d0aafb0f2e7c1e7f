package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Well-known task statuses. The status field is an open string set: clients
// may send other values and no transition checking is performed.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusDone       = "done"
)

// Task references its project and assignee by name, not by id. Owner is the
// email of the creator and scopes list queries.
type Task struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Owner        string             `bson:"owner" json:"owner"`
	Project      string             `bson:"project" json:"project"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	AssignMember string             `bson:"assignMember" json:"assignMember"`
	Priority     string             `bson:"priority" json:"priority"`
	Status       string             `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
