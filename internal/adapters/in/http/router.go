package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"catering/internal/adapters/in/http/api"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// RouterConfig selects the optional parts of the HTTP stack.
type RouterConfig struct {
	Logger *slog.Logger

	// Idempotency enables Idempotency-Key handling on POST /payments.
	// Nil disables it.
	Idempotency IdempotencyStore

	// ValidateRequests checks requests against the OpenAPI document.
	ValidateRequests bool
}

var registerDocsOnce sync.Once

// NewRouter builds the echo instance serving the API, the health check, the
// OpenAPI document and the Swagger UI.
func NewRouter(server *Server, cfg RouterConfig) (*echo.Echo, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	docJSON, err := api.SpecJSON()
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	registerDocsOnce.Do(func() {
		swag.Register(swag.Name, &swag.Spec{
			InfoInstanceName: swag.Name,
			SwaggerTemplate:  string(docJSON),
			LeftDelim:        "{{",
			RightDelim:       "}}",
		})
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, docJSON)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	if cfg.ValidateRequests {
		doc, err := api.GetSwagger()
		if err != nil {
			return nil, fmt.Errorf("load openapi document: %w", err)
		}
		validator, err := RequestValidator(doc)
		if err != nil {
			return nil, err
		}
		e.Use(validator)
	}
	if cfg.Idempotency != nil {
		e.Use(Idempotency(cfg.Idempotency, logger, func(c echo.Context) bool {
			return c.Request().Method == http.MethodPost && c.Path() == "/payments"
		}))
	}

	api.RegisterHandlers(e, server)
	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
