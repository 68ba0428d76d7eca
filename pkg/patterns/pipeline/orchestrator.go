package pipeline

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/marcodd23/go-copy-core/pkg/logx"
)

type contextKey string

const (
	workerIDKey     contextKey = "workerID"
	pipelineNameKey contextKey = "pipelineName"
)

// Config holds the configuration for each pipeline, including its input and output channels, and the number of workers.
type Config struct {
	Pipeline   *Pipeline
	InputChan  chan PipeEvent
	OutputChan chan PipeEvent
	NumWorkers int
}

// Orchestrator orchestrates multiple pipelines, each with its own input and output channels and a configurable number of workers.
type Orchestrator struct {
	pipelines map[string]Config
}

// NewOrchestrator creates a new Orchestrator.
//
// Parameters:
// - pipelines: A map where each key is a pipeline identifier and the value is the Config.
//
// Returns:
// - A new instance of Orchestrator.
func NewOrchestrator(pipelines map[string]Config) *Orchestrator {
	return &Orchestrator{
		pipelines: pipelines,
	}
}

// Execute runs all pipelines, each with its configured number of workers.
//
// This method starts multiple goroutines for each pipeline based on its configuration.
// Each goroutine listens for events on its input channel, processes them through
// the pipeline, and sends the results to the output channel.
//
// Parameters:
// - cancelCtx: A context that can be used to cancel the processing.
// - wg: A wait group to wait for all processing goroutines to complete.
func (o *Orchestrator) Execute(cancelCtx context.Context, wg *sync.WaitGroup) {
	for name, config := range o.pipelines {
		for j := 0; j < config.NumWorkers; j++ {
			wg.Add(1)
			workerID := j
			go func(ctx context.Context, pipelineName string, pipelineConfig Config, workerID int) {
				defer wg.Done()
				o.processEvents(ctx, pipelineName, pipelineConfig, workerID)
			}(cancelCtx, name, config, workerID)
		}
	}
}

// processEvents is the main loop for processing events.
//
// This method is executed by each worker goroutine. It listens for events on the
// input channel, processes each event through the pipeline, and sends the results
// to the output channel. If the context is cancelled, the worker stops processing.
func (o *Orchestrator) processEvents(ctx context.Context, pipelineName string, pipelineConfig Config, workerID int) {
	for {
		select {
		case <-ctx.Done():
			// Context was cancelled, stop processing
			logx.GetLogger().LogInfo(context.Background(), BuildPipelineLog(
				Stopped,
				strconv.Itoa(workerID),
				pipelineName,
				"",
				"",
				"context cancellation",
			))
			return
		case event, ok := <-pipelineConfig.InputChan:
			if !ok {
				// Channel was closed, stop processing
				return
			}

			// Add worker ID and pipeline name to the context
			eventCtx := context.WithValue(ctx, workerIDKey, strconv.Itoa(workerID))
			eventCtx = context.WithValue(eventCtx, pipelineNameKey, pipelineName)

			// Process the event
			processedEvent, err := pipelineConfig.Pipeline.Process(eventCtx, event)
			if err != nil {
				logx.GetLogger().LogError(context.Background(), BuildPipelineLog(
					Error,
					strconv.Itoa(workerID),
					pipelineName,
					"",
					event.GetEventId(),
					fmt.Sprintf("error processing event: %v", err),
				))
				continue
			}

			logx.GetLogger().LogInfo(context.Background(), BuildPipelineLog(
				Completed,
				strconv.Itoa(workerID),
				pipelineName,
				"",
				processedEvent.GetEventId(),
				"completed processing event",
			))

			// Send to the output channel if provided
			if pipelineConfig.OutputChan != nil {
				pipelineConfig.OutputChan <- processedEvent
			}
		}
	}
}
