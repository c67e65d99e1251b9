package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"trustmate/config"
	"trustmate/models"
	"trustmate/services/notification"
	"trustmate/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReminderSend = "reminder:send"

// reminderLead is how long before the appointment the reminder fires.
const reminderLead = time.Hour

func redisClientOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}
}

// ReminderQueue enqueues delayed booking reminders through asynq. It is only
// constructed when Redis is configured; without it sessions run with
// reminders disabled.
type ReminderQueue struct {
	client *asynq.Client
	logger *zap.Logger
}

func NewReminderQueue() *ReminderQueue {
	return &ReminderQueue{
		client: asynq.NewClient(redisClientOpt()),
		logger: utils.GetLogger(),
	}
}

// ScheduleBookingReminder enqueues a reminder one hour before the
// appointment. Appointments too close or in the past get no reminder.
func (q *ReminderQueue) ScheduleBookingReminder(booking models.Booking, email, serviceName string) error {
	fireAt := appointmentTime(booking).Add(-reminderLead)
	if !fireAt.After(time.Now()) {
		q.logger.Debug("skipping reminder for near-term booking", zap.String("booking", booking.ID))
		return nil
	}

	payload := models.ReminderPayload{
		BookingID:   booking.ID,
		UserID:      booking.UserID,
		Email:       email,
		ServiceName: serviceName,
		FireDate:    fireAt.Format(time.RFC3339),
		Title:       "Upcoming appointment",
		Body:        fmt.Sprintf("Your %s appointment is at %s today. %s will see you there.", serviceName, booking.Time, booking.TechnicianName),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeReminderSend, data)
	info, err := q.client.Enqueue(task, asynq.ProcessAt(fireAt), asynq.MaxRetry(3))
	if err != nil {
		return err
	}
	q.logger.Info("booking reminder enqueued",
		zap.String("booking", booking.ID),
		zap.String("task", info.ID),
		zap.Time("fireAt", fireAt),
	)
	return nil
}

func (q *ReminderQueue) Close() error {
	return q.client.Close()
}

// appointmentTime combines the booking date with its display slot. Slots that
// fail to parse fall back to the bare date.
func appointmentTime(b models.Booking) time.Time {
	slot, err := time.Parse("3:04 PM", b.Time)
	if err != nil {
		return b.Date
	}
	y, m, d := b.Date.Date()
	return time.Date(y, m, d, slot.Hour(), slot.Minute(), 0, 0, b.Date.Location())
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(delivery notification.DeliveryService) {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		redisClientOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(delivery))

	go func() {
		logger.Info("starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("reminder worker failed to start",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err),
			)
			if attempts == maxAttempts {
				logger.Fatal("reminder worker exhausted retries")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
}

func handleReminderTask(delivery notification.DeliveryService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return err
		}

		logger.Info("firing booking reminder",
			zap.String("booking", p.BookingID),
			zap.String("email", p.Email),
		)

		if ok := delivery.SendReminder(ctx, p.Email, p.Title, p.Body); !ok {
			logger.Warn("reminder was not delivered", zap.String("booking", p.BookingID))
		}
		return nil
	}
}
