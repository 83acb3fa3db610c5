package main

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

type Config struct {
	Host                 string        `env:"HOST,default=localhost"`
	Port                 int           `env:"PORT,default=8080"`
	HealthPort           int           `env:"HEALTH_PORT,default=50051"`
	InspectPort          int           `env:"INSPECT_PORT,default=8081"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH"`
	SessionSecret        string        `env:"SESSION_SECRET,required=true"`
	SessionDuration      time.Duration `env:"SESSION_DURATION,default=720h"`
	SecureCookies        bool          `env:"SECURE_COOKIES,default=false"`
	SubscriberBufferSize int           `env:"SUBSCRIBER_BUFFER_SIZE,default=64"`
	WriteTimeout         time.Duration `env:"WRITE_TIMEOUT,default=5s"`
	RoomTTL              time.Duration `env:"ROOM_TTL,default=6h"`
	JanitorInterval      time.Duration `env:"JANITOR_INTERVAL,default=1m"`
	MetricInterval       time.Duration `env:"METRIC_INTERVAL,default=10s"`
	ReportInterval       time.Duration `env:"REPORT_INTERVAL,default=1m"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=1s"`
	EnableDebugRooms     bool          `env:"ENABLE_DEBUG_ROOMS,default=false"`
	AllowedOrigins       string        `env:"ALLOWED_ORIGINS"`
	RulesScript          string        `env:"RULES_SCRIPT"`
}

// Origins splits ALLOWED_ORIGINS, a comma separated list.
func (c Config) Origins() []string {
	return lo.Compact(lo.Map(strings.Split(c.AllowedOrigins, ","), func(origin string, _ int) string {
		return strings.TrimSpace(origin)
	}))
}
