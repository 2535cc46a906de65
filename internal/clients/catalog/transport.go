package catalog

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/dex-api/internal/errors"
)

// maxBodyBytes bounds a single catalog response; the largest resource list
// is well under this.
const maxBodyBytes = 16 << 20

// get performs one rate limited GET and classifies the outcome into the
// catalog error kinds.
func (c *client) get(ctx context.Context, target string) ([]byte, error) {
	ctx, span := c.tracer.Start(ctx, "catalog.get",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("url.full", target)))
	defer span.End()

	body, status, err := c.roundTrip(ctx, target)
	if status != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, errors.GetMessage(err))
		return nil, err
	}
	return body, nil
}

func (c *client) roundTrip(ctx context.Context, target string) ([]byte, int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, errors.CatalogNetwork(err, isTimeout(ctx, err), "request abandoned while rate limited")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, 0, errors.CatalogNetwork(err, false, "failed to build catalog request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "dex-api")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		timedOut := isTimeout(ctx, err)
		slog.WarnContext(ctx, "Catalog request failed",
			"url", target,
			"timed_out", timedOut,
			"error", err)
		return nil, 0, errors.CatalogNetwork(err, timedOut, fmt.Sprintf("request to %s failed", target))
	}
	defer func() { _ = resp.Body.Close() }()

	slog.DebugContext(ctx, "Catalog response",
		"url", target,
		"status", resp.StatusCode,
		"elapsed", time.Since(start))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, resp.StatusCode, errors.CatalogNotFoundf("%s not found", target)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, resp.StatusCode, errors.CatalogNetwork(nil, false,
			fmt.Sprintf("unexpected status %d from %s", resp.StatusCode, target))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, resp.StatusCode, errors.CatalogNetwork(err, isTimeout(ctx, err),
			fmt.Sprintf("failed to read response from %s", target))
	}
	return body, resp.StatusCode, nil
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if stderrors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}
