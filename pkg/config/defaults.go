package config

import "time"

const (
	DefaultPort = "8080"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultRequestTimeout = 5 * time.Second
	DefaultMaxRequestSize = 4 * 1024 // 4KB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// A 24 byte line buffer leaves room for 22 characters, the newline and the terminator.
	DefaultMaxLineLength = 22

	DefaultEventsEnabled  = false
	DefaultEventsTopic    = "isbn.decompositions"
	DefaultEventsDLQTopic = "dlq-isbn"
)
