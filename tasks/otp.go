// Package tasks wires background jobs through asynq. The only queue today is
// OTP delivery: services enqueue the composed message and the worker hands it
// to the SMS gateway.
package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// TypeOTPDelivery is the asynq task type for outgoing OTP messages.
const TypeOTPDelivery = "otp:deliver"

// OTPDeliveryPayload carries one outgoing OTP message.
type OTPDeliveryPayload struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// NewOTPDeliveryTask builds the asynq task for an OTP message.
func NewOTPDeliveryTask(phone, message string) (*asynq.Task, error) {
	payload, err := json.Marshal(OTPDeliveryPayload{Phone: phone, Message: message})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal OTP delivery payload: %w", err)
	}
	return asynq.NewTask(TypeOTPDelivery, payload, asynq.MaxRetry(3)), nil
}
