package configs

import "time"

// Facts configures the fact source used by the reporting service.
type Facts struct {
	// QueryTimeout bounds each individual fact source call. Zero disables
	// the per-call deadline.
	QueryTimeout time.Duration `env:"QUERY_TIMEOUT" envDefault:"10s"`
}
