// Package models defines the JSON types shared by the API handlers.
package models

// =============================================================================
// Activities
// =============================================================================

// Activity is an extracurricular offering. The registry keys activities by
// name, so the name is not repeated inside the record.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// MessageResponse is the success envelope for signup/unregister.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorDetail is the error envelope for all failure responses.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// =============================================================================
// Health / system
// =============================================================================

type HealthResponse struct {
	Status     string  `json:"status"`
	Version    string  `json:"version"`
	Uptime     float64 `json:"uptime_seconds"`
	Activities int     `json:"activities"`
}

type SystemStats struct {
	HostUptimeSecs  uint64  `json:"host_uptime_seconds"`
	MemoryTotal     uint64  `json:"memory_total"`
	MemoryUsed      uint64  `json:"memory_used"`
	MemoryAvailable uint64  `json:"memory_available"`
	MemoryPercent   float64 `json:"memory_percent"`
	LoadAvg1        float64 `json:"load_avg_1"`
	LoadAvg5        float64 `json:"load_avg_5"`
	LoadAvg15       float64 `json:"load_avg_15"`
}
