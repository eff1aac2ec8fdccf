package worker

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"github.com/Souley97/Kalpe-sante/internal/services"
)

// Task Types
const (
	TypeRedemptionNotify = "redemption:notify"
	TypeWalletArchive    = "wallet:archive"
)

// Task Creators

func NewRedemptionNotifyTask(payload services.RedemptionNotice) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeRedemptionNotify, data), nil
}

func NewWalletArchiveTask() (*asynq.Task, error) {
	return asynq.NewTask(TypeWalletArchive, nil), nil
}

// Enqueuer wraps the asynq client behind the interface the services expect.
type Enqueuer struct {
	Client *asynq.Client
}

func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{Client: client}
}

func (e *Enqueuer) EnqueueRedemptionNotice(notice services.RedemptionNotice) error {
	task, err := NewRedemptionNotifyTask(notice)
	if err != nil {
		return err
	}
	_, err = e.Client.Enqueue(task, asynq.Queue("critical"))
	return err
}

func (e *Enqueuer) EnqueueWalletArchive() error {
	task, err := NewWalletArchiveTask()
	if err != nil {
		return err
	}
	_, err = e.Client.Enqueue(task, asynq.Queue("low"))
	return err
}
