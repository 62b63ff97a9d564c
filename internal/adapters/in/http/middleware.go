package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	traceIDKey    = "traceId"
	traceIDHeader = "X-Trace-Id"
)

// RequestLogger assigns every request a trace id and logs it once it is served.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(traceIDHeader)
			if traceID == "" {
				traceID = uuid.New().String()
			}
			c.Set(traceIDKey, traceID)
			c.Response().Header().Set(traceIDHeader, traceID)

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			requestLogger(c, logger).Info("request served",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
			)
			return nil
		}
	}
}

func traceIDFrom(c echo.Context) string {
	id, _ := c.Get(traceIDKey).(string)
	return id
}

func requestLogger(c echo.Context, logger *zap.Logger) *zap.Logger {
	return logger.With(zap.String("traceId", traceIDFrom(c)))
}
