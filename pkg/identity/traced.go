package identity

import (
	"context"

	"github.com/covenantlabs/covenant-core/pkg/telemetry"
)

// EvolveIdentityTraced wraps EvolveIdentity with a span recording the prior
// identity, the change type, and the resulting identity ID.
func EvolveIdentityTraced(ctx context.Context, prev Document, opts EvolveOptions) (Document, error) {
	_, span := telemetry.StartEvolveSpan(ctx, prev.ID, opts.ChangeType)
	defer span.End()

	doc, err := EvolveIdentity(prev, opts)
	if err == nil {
		span.SetAttributes(telemetry.AttrIdentityID.String(doc.ID))
	}
	return doc, err
}

// VerifyIdentityTraced wraps VerifyIdentity with a span recording the
// verification outcome.
func VerifyIdentityTraced(ctx context.Context, doc *Document) VerificationResult {
	_, span := telemetry.StartVerifySpan(ctx, "identity.verify", doc.ID)
	result := VerifyIdentity(doc)
	telemetry.EndWithResult(span, result.Valid, result.FirstFailed())
	return result
}
