package api

import "time"

type Configuration struct {
	Env                 string
	AppName             string
	Port                string
	MaxBatchSize        int
	DefaultTimeout      time.Duration
	BatchTimeout        time.Duration
	ListRefreshTimeout  time.Duration
	RequestLoggingLevel string
}
