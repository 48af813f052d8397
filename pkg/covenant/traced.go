package covenant

import (
	"context"

	"github.com/covenantlabs/covenant-core/pkg/config"
	"github.com/covenantlabs/covenant-core/pkg/telemetry"
)

// BuildCovenantTraced wraps BuildCovenant with a span recording the issuer,
// beneficiary, and resulting document ID. BuildCovenant itself stays
// context-free; only this tracing layer accepts one, for the host
// application's benefit.
func BuildCovenantTraced(ctx context.Context, opts BuildOptions, limits config.Limits) (Document, error) {
	_, span := telemetry.StartBuildSpan(ctx, opts.Issuer.ID, opts.Beneficiary.ID)
	defer span.End()

	doc, err := BuildCovenant(opts, limits)
	if err == nil {
		span.SetAttributes(telemetry.AttrCovenantID.String(doc.ID))
	}
	return doc, err
}

// VerifyCovenantTraced wraps VerifyCovenant with a span recording the
// verification outcome.
func VerifyCovenantTraced(ctx context.Context, doc *Document, limits config.Limits) VerificationResult {
	_, span := telemetry.StartVerifySpan(ctx, "covenant.verify", doc.ID)
	result := VerifyCovenant(doc, limits)
	telemetry.EndWithResult(span, result.Valid, result.FirstFailed())
	return result
}
