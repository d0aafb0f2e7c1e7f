package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/devasif/smart-task-management/config"
	"github.com/devasif/smart-task-management/internal/application"
	"github.com/devasif/smart-task-management/internal/domain/entity"
	"github.com/devasif/smart-task-management/internal/infrastructure/mongodb"
	"github.com/devasif/smart-task-management/pkg/helpers"
)

// The activity worker drains the activity queue and persists entries into
// the activities collection. It runs as its own binary so the API never
// blocks on the audit trail.
func main() {
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-activity-worker", cfg.Env)

	if cfg.RabbitMQURL == "" || cfg.RabbitMQActivityQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}

	ctx := context.Background()

	client, err := mongodb.NewClient(ctx, cfg.MongoURI, cfg.MongoConnTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	activities := mongodb.NewActivityRepository(client.Database(cfg.MongoDB))

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	// Prefetch for fair dispatch
	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	if _, err := ch.QueueDeclare(cfg.RabbitMQActivityQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQActivityQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		for msg := range msgs {
			var ev application.ActivityEvent
			if err := json.Unmarshal(msg.Body, &ev); err != nil {
				logger.WithError(err).Warn("bad activity message")
				_ = msg.Nack(false, false)
				continue
			}

			insertCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			err := activities.Insert(insertCtx, &entity.Activity{
				Actor:   ev.Actor,
				Action:  ev.Action,
				Subject: ev.Subject,
				At:      ev.At,
			})
			cancel()
			if err != nil {
				logger.WithError(err).Error("activity insert failed")
				// Requeue once; the broker drops it on the second failure.
				_ = msg.Nack(false, !msg.Redelivered)
				continue
			}
			_ = msg.Ack(false)
		}
	}()

	logger.Infof("activity worker consuming from %s", cfg.RabbitMQActivityQueue)
	<-stop
	logger.Info("activity worker shutting down")
}
