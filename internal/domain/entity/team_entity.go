package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member is embedded in a team document. CurrentTask is derived at read
// time (open tasks assigned to the member) and never persisted.
type Member struct {
	Name        string `bson:"name" json:"name"`
	Role        string `bson:"role" json:"role"`
	Capacity    int    `bson:"capacity" json:"capacity"`
	CurrentTask int64  `bson:"-" json:"currentTask"`
}

type Team struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Owner     string             `bson:"owner" json:"owner"`
	Name      string             `bson:"name" json:"name"`
	Members   []Member           `bson:"members" json:"members"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
