package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"slopeline/config"
	"slopeline/models"
	"slopeline/services/schedule"
	"slopeline/services/timesheet"

	"github.com/hibiken/asynq"
)

// InitDeriveWorker runs the async worker in background. It consumes completed
// work sessions and writes derived availability windows through the schedule
// service so both producers share one validation path.
func InitDeriveWorker(scheduleSvc schedule.ScheduleService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(timesheet.TypeDeriveAvailability, handleDeriveTask(scheduleSvc))

	go func() {
		log.Println("[DeriveWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[DeriveWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[DeriveWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleDeriveTask(scheduleSvc schedule.ScheduleService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.DeriveAvailabilityPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[DeriveWorker] invalid payload: %v", err)
			return err
		}

		log.Printf("[DeriveWorker] deriving availability for instructor %s on %s", p.InstructorID, p.Date)

		if err := scheduleSvc.AddDerivedWindow(ctx, p.InstructorID, p.Date, p.ClockIn, p.ClockOut); err != nil {
			log.Printf("[DeriveWorker] failed to derive availability: %v", err)
			return err
		}
		return nil
	}
}
