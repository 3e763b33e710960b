package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	json "github.com/bytedance/sonic"
	"github.com/tmsptr/spreadsheetEvaluator/contracts"
)

const DefaultWebhookWorkersCount = 5

const webhookQueueSize = 20

type WebhookSendCommand struct {
	Webhook    string
	Submission *contracts.Submission
}

// WebhookDispatcher delivers processed sheets to per-request webhooks in the background
type WebhookDispatcher struct {
	queue        chan WebhookSendCommand
	workersCount int
	client       *http.Client
	output       io.Writer
	pending      sync.WaitGroup
	workers      sync.WaitGroup
}

func NewWebhookDispatcher(workersCount int, output io.Writer) *WebhookDispatcher {
	if workersCount <= 0 {
		workersCount = DefaultWebhookWorkersCount
	}

	return &WebhookDispatcher{
		queue:        make(chan WebhookSendCommand, webhookQueueSize),
		workersCount: workersCount,
		client: &http.Client{
			Timeout: time.Second * 5,
		},
		output: output,
	}
}

func (manager *WebhookDispatcher) Notify(webhookUrl string, submission *contracts.Submission) {
	if webhookUrl == "" || submission == nil {
		return
	}

	manager.pending.Add(1)
	go manager.addToQueue(WebhookSendCommand{
		Webhook:    webhookUrl,
		Submission: submission,
	})
}

func (manager *WebhookDispatcher) addToQueue(command WebhookSendCommand) {
	defer manager.pending.Done()
	manager.queue <- command
}

func (manager *WebhookDispatcher) Start() {
	for i := 0; i < manager.workersCount; i++ {
		manager.workers.Add(1)
		go manager.runWebhookSenderWorker()
	}
}

// Close waits for queued notifications to be sent
func (manager *WebhookDispatcher) Close() {
	manager.pending.Wait()
	close(manager.queue)
	manager.workers.Wait()
}

func (manager *WebhookDispatcher) runWebhookSenderWorker() {
	defer manager.workers.Done()

	for command := range manager.queue {
		if err := manager.send(command); err != nil {
			_, _ = fmt.Fprintf(manager.output, "Webhook send error: %s\n", err)
		}
	}
}

func (manager *WebhookDispatcher) send(command WebhookSendCommand) error {
	payload, err := json.Marshal(command.Submission)
	if err != nil {
		return err
	}

	response, err := manager.client.Post(command.Webhook, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode >= 300 {
		return fmt.Errorf("unexpected webhook response HTTP status: %s", response.Status)
	}
	return nil
}
