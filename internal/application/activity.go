package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// ActivityEvent is the message mutations publish to the activity queue.
// The activity worker consumes these and persists them.
type ActivityEvent struct {
	Actor   string    `json:"actor"`
	Action  string    `json:"action"`
	Subject string    `json:"subject"`
	At      time.Time `json:"at"`
}

// ActivityPublisher is satisfied by helpers.RabbitPublisher.
type ActivityPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// publishActivity emits an event best-effort: a broker failure is logged
// and never fails the request that triggered it.
func publishActivity(ctx context.Context, pub ActivityPublisher, logger *logrus.Logger, actor, action, subject string) {
	if pub == nil {
		return
	}
	ev := ActivityEvent{Actor: actor, Action: action, Subject: subject, At: time.Now().UTC()}
	if err := pub.PublishJSON(ctx, ev); err != nil && logger != nil {
		logger.WithError(err).WithFields(logrus.Fields{
			"action":  action,
			"subject": subject,
		}).Warn("activity publish failed")
	}
}
