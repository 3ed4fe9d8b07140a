package hermes

import "time"

type ComputeCompletedEvent struct {
	ComputationID string    `json:"computation_id"`
	Activation    string    `json:"activation"`
	Normalized    bool      `json:"normalized"`
	Size          int       `json:"size"`
	WeightedSum   float64   `json:"weighted_sum"`
	Output        float64   `json:"output"`
	Timestamp     time.Time `json:"timestamp"`
}

type ComputeFailedEvent struct {
	ComputationID string    `json:"computation_id"`
	Kind          string    `json:"kind"`
	Error         string    `json:"error"`
	Timestamp     time.Time `json:"timestamp"`
}
