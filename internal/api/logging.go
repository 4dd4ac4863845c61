package api

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if os.Getenv("MEDSIM_LOG_LEVEL") == "debug" {
		level = zerolog.DebugLevel
	}
	return zerolog.New(os.Stderr).
		With().
		Str("component", "api").
		Timestamp().
		Logger().
		Level(level)
}

// requestLogger emits one structured line per request after the handler
// chain finishes.
func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		evt := log.Info()
		if c.Writer.Status() >= 500 {
			evt = log.Error()
		}
		evt.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}
