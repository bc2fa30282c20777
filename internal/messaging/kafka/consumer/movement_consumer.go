package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-checkin/internal/events"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const dashboardCounterTTL = 48 * time.Hour

func DashboardCounterKey(date string) string {
	return fmt.Sprintf("dashboard:counters:%s", date)
}

// ConsumeMovementRecorded keeps the live dashboard counters in Redis up to
// date from the movement stream. The counters are a cache: the dashboard
// falls back to the ledger when they are missing, so the consumer only ever
// increments and lets TTL expire old days.
func ConsumeMovementRecorded(
	ctx context.Context,
	reader *kafkago.Reader,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.movement_recorded")
	log.Info("movement recorded consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("movement recorded consumer stopped")
				return
			}
			log.Error("fetch movement message failed", zap.Error(err))
			continue
		}

		var event events.MovementRecordedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode movement_recorded event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if event.Kind == "ENTRY" {
			key := DashboardCounterKey(event.Date)
			pipe := rdb.Pipeline()
			pipe.HIncrBy(ctx, key, "present", 1)
			if event.Late {
				pipe.HIncrBy(ctx, key, "late", 1)
				pipe.HIncrBy(ctx, key, "late_minutes", int64(event.LateMinutes))
			}
			pipe.Expire(ctx, key, dashboardCounterTTL)
			if _, err := pipe.Exec(ctx); err != nil {
				log.Error("update dashboard counters failed",
					zap.String("movement_id", event.MovementID),
					zap.Error(err),
				)
				continue
			}
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit movement message failed", zap.Error(err))
			continue
		}

		log.Info("movement event processed",
			zap.String("movement_id", event.MovementID),
			zap.String("employee_id", event.EmployeeID),
			zap.String("kind", event.Kind),
		)
	}
}
