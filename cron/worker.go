package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"lightfield/config"
	blogRepo "lightfield/database/repository/blog"
	"lightfield/services/solo"

	"github.com/hibiken/asynq"
)

const TypeOverviewGenerate = "overview:generate"

// OverviewPayload is the queued task for one blog post.
type OverviewPayload struct {
	BlogID string `json:"blog_id"`
}

var queueClient *asynq.Client

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitOverviewWorker runs the async worker that generates blog AI overviews
// in the background.
func InitOverviewWorker(blogs blogRepo.BlogRepository, gemini *solo.GeminiClient) {
	queueClient = asynq.NewClient(redisOpts())

	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeOverviewGenerate, handleOverviewTask(blogs, gemini))

	go func() {
		log.Println("[OverviewWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[OverviewWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[OverviewWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// EnqueueOverview schedules overview generation for one blog post.
func EnqueueOverview(blogID string) {
	if queueClient == nil {
		return
	}
	payload, err := json.Marshal(OverviewPayload{BlogID: blogID})
	if err != nil {
		log.Printf("[OverviewWorker] Failed to marshal payload: %v", err)
		return
	}
	task := asynq.NewTask(TypeOverviewGenerate, payload)
	if _, err := queueClient.Enqueue(task, asynq.MaxRetry(3), asynq.Timeout(2*time.Minute)); err != nil {
		log.Printf("[OverviewWorker] Failed to enqueue overview for %s: %v", blogID, err)
	}
}

// EnqueueMissingOverviews backfills overviews for published posts without one.
func EnqueueMissingOverviews(blogs blogRepo.BlogRepository) {
	ids, err := blogs.MissingAIOverviewIDs()
	if err != nil {
		log.Printf("[OverviewWorker] Failed to find posts missing overviews: %v", err)
		return
	}
	for _, id := range ids {
		EnqueueOverview(id)
	}
}

func handleOverviewTask(blogs blogRepo.BlogRepository, gemini *solo.GeminiClient) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p OverviewPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[OverviewHandler] Invalid payload: %v", err)
			return err
		}

		post, err := blogs.GetByID(p.BlogID)
		if err != nil {
			return err
		}
		if post == nil || !post.IsPublished {
			return nil
		}

		overview, err := gemini.GenerateOverview(ctx, post.Title, post.Content)
		if err != nil {
			log.Printf("[OverviewHandler] Generation failed for %s: %v", p.BlogID, err)
			return err
		}
		return blogs.SetAIOverview(post.ID, overview)
	}
}
