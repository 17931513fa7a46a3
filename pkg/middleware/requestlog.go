package middleware

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// RequestLog writes one logrus line per request. 5xx responses log at
// error level, 4xx at warn.
func RequestLog(log *logrus.Entry) echo.MiddlewareFunc {
	return echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogRoutePath: true,
		LogStatus:    true,
		LogLatency:   true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := log.WithFields(logrus.Fields{
				"method":  v.Method,
				"uri":     v.URI,
				"route":   v.RoutePath,
				"status":  v.Status,
				"latency": v.Latency.String(),
			})
			if v.Error != nil {
				entry = entry.WithError(v.Error)
			}
			switch {
			case v.Status >= 500:
				entry.Error("request")
			case v.Status >= 400:
				entry.Warn("request")
			default:
				entry.Debug("request")
			}
			return nil
		},
	})
}
