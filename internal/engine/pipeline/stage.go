package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/ess/internal/core/domain"
	"go.trai.ch/ess/internal/core/ports"
)

// runStage wraps one stage invocation with a telemetry span, timing, and
// the info-level decision log every stage shares.
func runStage(ctx context.Context, tracer ports.Tracer, log ports.Logger, name string, key domain.AssetKey, fn func(ctx context.Context, span ports.Span) error) error {
	ctx, span := tracer.Start(ctx, name+" "+key.String())
	defer span.End()

	start := time.Now()
	err := fn(ctx, span)
	elapsed := time.Since(start).Milliseconds()

	if err != nil {
		span.RecordError(err)
		return err
	}
	log.Info(fmt.Sprintf("%s (%dms)", name, elapsed))
	return nil
}
