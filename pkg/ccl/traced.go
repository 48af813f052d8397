package ccl

import (
	"context"

	"github.com/covenantlabs/covenant-core/pkg/telemetry"
)

// EvaluateTraced wraps Evaluate with a span recording the requested action,
// resource, and the resulting permit/deny decision.
func EvaluateTraced(ctx context.Context, doc *Document, action, resource string, requestContext map[string]string) EvaluationResult {
	_, span := telemetry.StartEvaluateSpan(ctx, action, resource)
	defer span.End()

	result := Evaluate(doc, action, resource, requestContext)
	span.SetAttributes(telemetry.AttrPermitted.Bool(result.Permitted))
	return result
}
