package main

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/streadway/amqp"

	"github.com/skillscan/scanworker/internal/career"
	"github.com/skillscan/scanworker/internal/orchestrate"
)

// runScan drives one orchestration cycle for a queued request. Every
// state transition, including the loading carousel, is published as a
// scan update so subscribed renderers can follow along live.
func runScan(scan ScanRequest, workerConfig *WorkerConfig) {
	ctx := context.Background()

	publish := func(s orchestrate.State) {
		if err := publishScanUpdate(workerConfig.RabbitConn, scan.ID.String(), updateFor(scan.ID, s)); err != nil {
			log.Println("failed to publish update:", err)
		}
	}

	orch := orchestrate.New(workerConfig.Generator, orchestrate.Options{
		Listener: publish,
	})

	if scan.Kind == "jobs" {
		orch.FetchJobs(ctx, scan.Language)
		return
	}

	var att *career.Attachment
	if scan.ObjectKey != "" {
		// Retry downloading file (network failures are transient)
		fetched, err := retry(3, func() (career.Attachment, error) {
			return workerConfig.Producer.Fetch(ctx, scan.ObjectKey, scan.Mime)
		})
		if err != nil {
			log.Printf("failed to download %s after retries: %v", scan.ObjectKey, err)
			// Proceed on the user text alone rather than dropping the scan.
		} else {
			att = &fetched
		}
	}

	orch.Analyze(ctx, scan.Text, att, scan.Language)
}

func worker(id int, workerConfig *WorkerConfig, wg *sync.WaitGroup) {
	defer wg.Done()
	//    to consume message on the queue
	conn, err := amqp.Dial(workerConfig.RABBITMQUrl)
	if err != nil {
		log.Fatal("error dialling rabbitmq: " + err.Error())
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal("error connecting to rabbitmq channel: " + err.Error())
	}
	defer ch.Close()
	_, err = ch.QueueDeclare(
		"scans", // queue name
		true,    // durable (survives broker restarts)
		false,   // auto-delete when unused
		false,   // exclusive
		false,   // no-wait
		nil,     // arguments
	)
	if err != nil {
		log.Fatalf("Failed to declare queue: %v", err)
	}

	msgs, err := ch.Consume(
		"scans", // queue name
		"",      // consumer tag
		true,    // auto-ack
		false,   // exclusive
		false,   // no-local
		false,   // no-wait
		nil,     // arguments
	)
	if err != nil {
		log.Fatal("error consuming rabbitmq message: " + err.Error())
	}

	for msg := range msgs {
		scan := ScanRequest{}
		if err := json.Unmarshal(msg.Body, &scan); err != nil {
			log.Printf("error unmarshalling message body. err: %v", err)
			continue
		}
		log.Printf("Worker %d processing scan. scan_id: %s kind: %s", id+1, scan.ID, scan.Kind)

		runScan(scan, workerConfig)
	}
}

func (workerConfig *WorkerConfig) StartConsumerWorkerPool(numWorkers int) {
	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for i := range numWorkers {
		log.Println("worker id ", i+1, "started")
		go worker(i, workerConfig, &wg)
	}
	wg.Wait() // block until all workers finish
}
