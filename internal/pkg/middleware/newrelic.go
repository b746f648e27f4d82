package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// NewRelicMiddleware starts a New Relic transaction per request and puts it
// on the request context. A nil app makes this a pass-through.
func NewRelicMiddleware(app *newrelic.Application) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if app == nil {
				return next(c)
			}

			txn := app.StartTransaction(c.Request().Method + " " + c.Path())
			defer txn.End()

			txn.SetWebRequestHTTP(c.Request())
			w := txn.SetWebResponse(c.Response().Writer)
			c.Response().Writer = w

			ctx := newrelic.NewContext(c.Request().Context(), txn)
			c.SetRequest(c.Request().WithContext(ctx))

			err := next(c)
			if err != nil {
				txn.NoticeError(err)
			}

			return err
		}
	}
}

// AddAttribute adds a custom attribute to the current transaction
func AddAttribute(c echo.Context, key string, value interface{}) {
	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.AddAttribute(key, value)
	}
}

// NoticeError reports an error to New Relic
func NoticeError(c echo.Context, err error) {
	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.NoticeError(err)
	}
}

// SetTransactionName sets the transaction name for better tracing visibility
func SetTransactionName(ctx context.Context, name string) {
	txn := newrelic.FromContext(ctx)
	if txn != nil {
		txn.SetName(name)
	}
}
