package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/joho/godotenv"
	"github.com/streadway/amqp"

	"github.com/skillscan/scanworker/internal/attachment"
	"github.com/skillscan/scanworker/internal/genclient"
)

func main() {
	_ = godotenv.Load()

	rabbitmqUrl := os.Getenv("RABBITMQ_URL")
	if rabbitmqUrl == "" {
		log.Fatal("empty RABBITMQ_URL in env")
	}

	r2AccountId := os.Getenv("R2_ACCOUNT_ID")
	if r2AccountId == "" {
		log.Fatal("empty R2_ACCOUNT_ID in environment")
	}
	r2Bucket := os.Getenv("R2_BUCKET")
	if r2Bucket == "" {
		log.Fatal("empty R2_BUCKET in environment")
	}
	r2SecretKey := os.Getenv("R2_SECRET_KEY")
	if r2SecretKey == "" {
		log.Fatal("empty R2_SECRET_KEY in environment")
	}
	r2AccessKey := os.Getenv("R2_ACCESS_KEY")
	if r2AccessKey == "" {
		log.Fatal("empty R2_ACCESS_KEY in environment")
	}
	r2Config := attachment.R2Config{
		AccountID: r2AccountId,
		AccessKey: r2AccessKey,
		SecretKey: r2SecretKey,
		Bucket:    r2Bucket,
	}
	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r2Config.AccessKey, r2Config.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		log.Fatal("error creating aws config", err)
	}

	// A missing key is NOT fatal here: the orchestrator surfaces it as a
	// configuration failure state on the first scan instead.
	googleApiKey := os.Getenv("GOOGLE_API_KEY")
	if googleApiKey == "" {
		log.Println("warning: empty GOOGLE_API_KEY in env, scans will report a configuration error")
	}

	generator := genclient.New(genclient.Config{
		APIKey: googleApiKey,
		Model:  os.Getenv("GEMINI_MODEL"),
	})

	conn, err := amqp.Dial(rabbitmqUrl)
	if err != nil {
		log.Fatalf("error connecting to RabbitMQ. err:  %v", err)
	}

	workerConfig := WorkerConfig{
		Generator:   generator,
		Producer:    attachment.NewR2Producer(awsConfig, r2Config),
		RabbitConn:  conn,
		RABBITMQUrl: rabbitmqUrl,
	}

	log.Println("Starting 3 workers consumer pool")
	workerConfig.StartConsumerWorkerPool(3)
}
