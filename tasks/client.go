package tasks

import (
	"fmt"

	"karkhana/config"
	"karkhana/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

var client *asynq.Client

// InitClient sets up the shared asynq client.
func InitClient() {
	client = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
}

// EnqueueOTPDelivery queues an OTP message for delivery.
func EnqueueOTPDelivery(phone, message string) error {
	if client == nil {
		return fmt.Errorf("asynq client not initialized")
	}
	task, err := NewOTPDeliveryTask(phone, message)
	if err != nil {
		return err
	}
	info, err := client.Enqueue(task)
	if err != nil {
		return fmt.Errorf("failed to enqueue OTP delivery: %w", err)
	}
	utils.GetLogger().Debug("Enqueued OTP delivery", zap.String("taskID", info.ID))
	return nil
}

// CloseClient releases the shared asynq client.
func CloseClient() {
	if client != nil {
		_ = client.Close()
	}
}
