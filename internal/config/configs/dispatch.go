package configs

import "time"

// Dispatch bounds calls made to ad platforms. Timeout applies to every single
// adapter call; Concurrency limits in-flight slot dispatches per campaign
// operation.
type Dispatch struct {
	Timeout     time.Duration `env:"TIMEOUT" envDefault:"15s"`
	Concurrency int           `env:"CONCURRENCY" envDefault:"4"`
}
