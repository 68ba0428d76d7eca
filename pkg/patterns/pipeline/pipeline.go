package pipeline

import (
	"context"

	"github.com/marcodd23/go-copy-core/pkg/copyx"
	"github.com/marcodd23/go-copy-core/pkg/logx"
)

// A Pipeline helps orchestrate multiple pipeline steps.
type Pipeline struct {
	Name   string
	stages []Stage
}

// NewPipeline creates a new pipeline including the stages as configured.
func NewPipeline(name string, stages []Stage) *Pipeline {
	return &Pipeline{name, stages}
}

// Process pipes an incoming event through the pipeline.
// The event is isolated with a deep copy before entering the first stage, so
// stages may mutate nested payload structure without affecting the producer's
// instance or events handed to sibling workers.
//
// Parameters:
//   - ctx (context.Context): Processing context. Used for tracing.
//   - event (PipeEvent): Event to process.
//
// Returns:
//   - PipeEvent: Processed event. Since incoming events are immutable, this is an updated copy.
//   - error: If any error occurs during processing, this will not be nil.
func (p Pipeline) Process(ctx context.Context, event PipeEvent) (PipeEvent, error) {
	workerID, _ := ctx.Value(workerIDKey).(string)
	pipelineName, _ := ctx.Value(pipelineNameKey).(string)
	logx.GetLogger().LogInfo(ctx, BuildPipelineLog(Processing, workerID, pipelineName, "", event.GetEventId(), "starting pipeline"))

	isolated, err := copyx.Copy(event)
	if err != nil {
		return event, err
	}

	var current = isolated

	// route event through all pipeline stages, break on error
	for _, stage := range p.stages {
		current, err = stage.Process(ctx, current)
		if err != nil {
			break
		}
	}

	return current, err
}
