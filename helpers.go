package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"github.com/skillscan/scanworker/internal/orchestrate"
)

// retry retries a function up to `attempts` times with exponential backoff
func retry[T any](attempts int, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		wait := time.Duration(500*(i+1)) * time.Millisecond
		time.Sleep(wait)
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}

// --- State publishing ---

// updateFor flattens a state transition into the update payload the
// rendering layer subscribes to.
func updateFor(scanID uuid.UUID, s orchestrate.State) map[string]any {
	update := map[string]any{
		"scan_id":   scanID,
		"status":    string(s.Phase()),
		"timestamp": time.Now(),
	}
	switch t := s.(type) {
	case orchestrate.Loading:
		update["message"] = t.Phrase
	case orchestrate.Results:
		update["result"] = t.Result
	case orchestrate.Jobs:
		update["jobs"] = t.Listings
		update["grounding"] = t.Grounding
		if t.Notice != "" {
			update["message"] = t.Notice
		}
	case orchestrate.Failed:
		update["kind"] = string(t.Kind)
		update["message"] = t.Message
	}
	return update
}

func publishScanUpdate(rabbitConn *amqp.Connection, scanID string, update map[string]any) error {
	ch, err := rabbitConn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	body, _ := json.Marshal(update)
	routingKey := fmt.Sprintf("scan.%s", scanID)

	return ch.Publish(
		"scan_updates", // exchange
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
