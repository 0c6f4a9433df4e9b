package syncer

import "time"

const (
	defaultConcurrency = 50

	defaultInterval   = 5 * time.Second
	defaultMinBackoff = 1 * time.Second
	defaultMaxBackoff = 1 * time.Minute
)
