package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity is one entry of the audit feed. Entries are produced by the API
// as AMQP messages and persisted by the activity worker.
type Activity struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Actor   string             `bson:"actor" json:"actor"`
	Action  string             `bson:"action" json:"action"`
	Subject string             `bson:"subject" json:"subject"`
	At      time.Time          `bson:"at" json:"at"`
}
