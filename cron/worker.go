package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	"salonflow/config"
	"salonflow/services/report"
	"salonflow/services/schedule"
)

const (
	TypeDailyReport  = "report:daily"
	TypeApptReminder = "reminder:appointments"
)

type dailyReportPayload struct {
	Date string `json:"date"`
}

// InitReportWorker runs the async worker and the scheduler that enqueues the
// daily report task on the configured cron spec.
func InitReportWorker(reportSvc report.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeDailyReport, handleDailyReportTask(reportSvc))
	mux.HandleFunc(TypeApptReminder, handleReminderTask(reportSvc))

	go monitorRedisConnection()

	go func() {
		log.Println("[ReportWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReportWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReportWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go func() {
		scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{
			Location: config.SalonLocation(),
		})

		// Payload dates are resolved at run time so every firing covers the
		// day it runs (or, for reminders, the day after).
		if _, err := scheduler.Register(config.AppConfig.ReportCronSpec, asynq.NewTask(TypeDailyReport, nil)); err != nil {
			log.Printf("[ReportWorker] Failed to register report schedule: %v", err)
			return
		}
		if _, err := scheduler.Register(config.AppConfig.ReminderCronSpec, asynq.NewTask(TypeApptReminder, nil)); err != nil {
			log.Printf("[ReportWorker] Failed to register reminder schedule: %v", err)
			return
		}
		if err := scheduler.Run(); err != nil {
			log.Printf("[ReportWorker] Scheduler stopped: %v", err)
		}
	}()
}

func handleDailyReportTask(reportSvc report.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p dailyReportPayload
		if len(task.Payload()) > 0 {
			if err := json.Unmarshal(task.Payload(), &p); err != nil {
				log.Printf("[ReportHandler] Invalid payload: %v", err)
				return err
			}
		}
		if p.Date == "" {
			p.Date = time.Now().In(config.SalonLocation()).Format(schedule.DateLayout)
		}

		log.Printf("[ReportHandler] Sending daily report for %s", p.Date)
		if err := reportSvc.SendDailyReport(ctx, p.Date); err != nil {
			log.Printf("[ReportHandler] Failed to send daily report: %v", err)
			return err
		}
		return nil
	}
}

// handleReminderTask emails clients about tomorrow's appointments.
func handleReminderTask(reportSvc report.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		date := time.Now().In(config.SalonLocation()).AddDate(0, 0, 1).Format(schedule.DateLayout)

		sent, err := reportSvc.SendAppointmentReminders(ctx, date)
		if err != nil {
			log.Printf("[ReminderHandler] Failed to send reminders for %s: %v", date, err)
			return err
		}
		log.Printf("[ReminderHandler] Sent %d reminders for %s", sent, date)
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReportWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
