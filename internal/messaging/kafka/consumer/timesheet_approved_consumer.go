package consumer

import (
	"context"
	"encoding/json"

	"github.com/k1slee/worktime-tracking/internal/bootstrap"
	"github.com/k1slee/worktime-tracking/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeTimesheetLifecycle turns approval events into audit log entries,
// so the planning department has a trail independent of the main database.
func ConsumeTimesheetLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.timesheet_lifecycle")
	log.Info("timesheet lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("timesheet lifecycle consumer stopped")
				return
			}
			log.Error("fetch timesheet lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.TimesheetApprovedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode timesheet_approved event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		auditLogger.Log(ctx, bootstrap.AuditLog{
			Action:  "TIMESHEET_APPROVED",
			Message: "Timesheet record approved",
			Meta: map[string]any{
				"timesheet_id": event.TimesheetID,
				"employee_id":  event.EmployeeID,
				"master_id":    event.MasterID,
				"date":         event.Date,
				"value":        event.Value,
				"approved_by":  event.ApprovedBy,
				"occurred_at":  event.OccurredAt,
				"request_id":   event.RequestID,
			},
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit timesheet lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("timesheet approval audited",
			zap.String("timesheet_id", event.TimesheetID),
			zap.String("approved_by", event.ApprovedBy),
		)
	}
}
