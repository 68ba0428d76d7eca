package pipeline

import "fmt"

// Status - pipeline processing status used in structured pipeline logs.
type Status int

const (
	Processing Status = iota
	Completed
	Stopped
	Error
)

//nolint:gochecknoglobals
var statusLabels = map[Status]string{
	Processing: "PROCESSING",
	Completed:  "COMPLETED",
	Stopped:    "STOPPED",
	Error:      "ERROR",
}

// BuildPipelineLog formats a pipeline progress message for the logger.
func BuildPipelineLog(status Status, workerID string, pipelineName string, stageName string, eventId string, detail string) string {
	logMessage := fmt.Sprintf("[%s]", statusLabels[status])

	if pipelineName != "" {
		logMessage += fmt.Sprintf(" Pipeline: %s,", pipelineName)
	}

	if workerID != "" {
		logMessage += fmt.Sprintf(" Worker: %s,", workerID)
	}

	if stageName != "" {
		logMessage += fmt.Sprintf(" Stage: %s,", stageName)
	}

	if eventId != "" {
		logMessage += fmt.Sprintf(" Event: %s,", eventId)
	}

	if detail != "" {
		logMessage += " " + detail
	}

	return logMessage
}
