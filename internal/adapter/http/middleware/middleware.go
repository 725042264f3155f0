package middleware

import (
	"github.com/Temutjin2k/taxi-analytics-system/pkg/logger"
)

type Middleware struct {
	ingestSecret   string
	allowedOrigins string
	log            logger.Logger
}

func NewMiddleware(ingestSecret, allowedOrigins string, log logger.Logger) *Middleware {
	return &Middleware{
		ingestSecret:   ingestSecret,
		allowedOrigins: allowedOrigins,
		log:            log,
	}
}
