package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"karkhana/config"
	"karkhana/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// HandleOTPDeliveryTask delivers one OTP message. The SMS gateway call is
// stubbed; the message is logged until an integration lands.
func HandleOTPDeliveryTask(ctx context.Context, t *asynq.Task) error {
	var payload OTPDeliveryPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal OTP delivery payload: %w", err)
	}
	// Replace with the SMS provider call, e.g. an HTTP POST to the gateway.
	utils.GetLogger().Sugar().Infof("Sending SMS to %s: %s", payload.Phone, payload.Message)
	return nil
}

// StartWorker runs the asynq worker loop until the server is stopped.
// Intended to run in its own goroutine from main.
func StartWorker() *asynq.Server {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisCacheDB,
		},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeOTPDelivery, HandleOTPDeliveryTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			utils.GetLogger().Error("asynq worker stopped", zap.Error(err))
		}
	}()
	return srv
}
