package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"catering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	IdempotencyKeyHeader      = "Idempotency-Key"
	IdempotentReplayedHeader  = "Idempotent-Replayed"
	idempotencyKeyMaxLength   = 255
	idempotencyInFlightReason = "a request with this Idempotency-Key is still being processed"
)

// IdempotencyStore keeps the outcome of requests sent with an
// Idempotency-Key.
//
// Reserve claims key and reports false when it is already claimed. Load
// returns the payload saved for key; done is false while the first request
// is still running. Release drops a claim whose request failed.
type IdempotencyStore interface {
	Reserve(ctx context.Context, key string) (bool, error)
	Load(ctx context.Context, key string) (payload []byte, done bool, err error)
	Save(ctx context.Context, key string, payload []byte) error
	Release(ctx context.Context, key string) error
}

type storedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

// Idempotency replays the first response of a request carrying an
// Idempotency-Key for routes matched by applies. Responses with a 5xx status
// are not kept, so the request can be retried.
func Idempotency(store IdempotencyStore, logger *slog.Logger, applies func(echo.Context) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			key := ctx.Request().Header.Get(IdempotencyKeyHeader)
			if key == "" || !applies(ctx) {
				return next(ctx)
			}
			if len(key) > idempotencyKeyMaxLength {
				return errs.NewValueIsOutOfRangeError(IdempotencyKeyHeader, len(key), 1, idempotencyKeyMaxLength)
			}

			reqCtx := ctx.Request().Context()
			reserved, err := store.Reserve(reqCtx, key)
			if err != nil {
				return fmt.Errorf("reserve idempotency key: %w", err)
			}
			if !reserved {
				return replay(ctx, store, key)
			}

			record := middleware.BodyDumpWithConfig(middleware.BodyDumpConfig{
				Handler: func(ctx echo.Context, _, resBody []byte) {
					remember(ctx, store, logger, key, resBody)
				},
			})
			return record(next)(ctx)
		}
	}
}

func replay(ctx echo.Context, store IdempotencyStore, key string) error {
	payload, done, err := store.Load(ctx.Request().Context(), key)
	if err != nil {
		return fmt.Errorf("load idempotent response: %w", err)
	}
	if !done {
		return errs.NewConflictError(idempotencyInFlightReason)
	}

	var stored storedResponse
	if err = json.Unmarshal(payload, &stored); err != nil {
		return fmt.Errorf("decode idempotent response: %w", err)
	}
	ctx.Response().Header().Set(IdempotentReplayedHeader, "true")
	if len(stored.Body) == 0 {
		return ctx.NoContent(stored.Status)
	}
	return ctx.Blob(stored.Status, stored.ContentType, stored.Body)
}

// remember runs once the handler and, on failure, the error handler have
// written the response.
func remember(ctx echo.Context, store IdempotencyStore, logger *slog.Logger, key string, body []byte) {
	// The request context may already be cancelled; the claim must still be
	// settled.
	storeCtx := context.WithoutCancel(ctx.Request().Context())
	status := ctx.Response().Status

	if status >= http.StatusInternalServerError {
		if err := store.Release(storeCtx, key); err != nil {
			logger.WarnContext(storeCtx, "failed to release idempotency key", slog.String("key", key), slog.Any("error", err))
		}
		return
	}

	payload, err := json.Marshal(storedResponse{
		Status:      status,
		ContentType: ctx.Response().Header().Get(echo.HeaderContentType),
		Body:        body,
	})
	if err == nil {
		err = store.Save(storeCtx, key, payload)
	}
	if err != nil {
		logger.WarnContext(storeCtx, "failed to save idempotent response", slog.String("key", key), slog.Any("error", err))
	}
}
