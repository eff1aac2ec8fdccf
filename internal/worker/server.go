package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/hibiken/asynq"

	"github.com/Souley97/Kalpe-sante/internal/consumers"
	"github.com/Souley97/Kalpe-sante/internal/services"
)

type Worker struct {
	Processor *consumers.NotificationProcessor
}

func NewWorker(processor *consumers.NotificationProcessor) *Worker {
	return &Worker{
		Processor: processor,
	}
}

func (w *Worker) HandleRedemptionNotify(ctx context.Context, t *asynq.Task) error {
	var p services.RedemptionNotice
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("json.Unmarshal failed: %v: %w", err, asynq.SkipRetry)
	}
	return w.Processor.ProcessRedemptionNotice(p)
}

func (w *Worker) HandleWalletArchive(ctx context.Context, t *asynq.Task) error {
	return w.Processor.ProcessWalletArchive()
}

func StartWorker(redisOpt asynq.RedisClientOpt, processor *consumers.NotificationProcessor) {
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	worker := NewWorker(processor)
	mux := asynq.NewServeMux()

	mux.HandleFunc(TypeRedemptionNotify, worker.HandleRedemptionNotify)
	mux.HandleFunc(TypeWalletArchive, worker.HandleWalletArchive)

	if err := srv.Run(mux); err != nil {
		log.Fatalf("could not run server: %v", err)
	}
}
