package main

import (
	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"github.com/skillscan/scanworker/internal/attachment"
	"github.com/skillscan/scanworker/internal/orchestrate"
)

// ScanRequest is one queued user action. Kind selects the task mode;
// ObjectKey/Mime point at an optional uploaded document in R2.
type ScanRequest struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"` // "analysis" or "jobs"
	Text      string    `json:"text"`
	Language  string    `json:"language"`
	ObjectKey string    `json:"object_key"`
	Mime      string    `json:"mime"`
}

type WorkerConfig struct {
	Generator   orchestrate.Generator
	Producer    attachment.Producer
	RabbitConn  *amqp.Connection
	RABBITMQUrl string
}
