// Package telemetry provides attribute-key helpers and span instrumentation
// for covenant and identity lifecycle operations. It wraps the OpenTelemetry
// attribute and trace APIs only: no SDK, no exporters. A host application
// that has wired its own tracer provider will see these spans; one that
// hasn't pays only the no-op cost of the global tracer.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Semantic convention attributes for covenant/identity operations.
var (
	AttrCovenantID    = attribute.Key("covenant.id")
	AttrIssuerID      = attribute.Key("covenant.issuer.id")
	AttrBeneficiaryID = attribute.Key("covenant.beneficiary.id")
	AttrChainDepth    = attribute.Key("covenant.chain.depth")

	AttrIdentityID      = attribute.Key("identity.id")
	AttrIdentityVersion = attribute.Key("identity.version")
	AttrChangeType      = attribute.Key("identity.change_type")

	AttrAction       = attribute.Key("ccl.action")
	AttrResource     = attribute.Key("ccl.resource")
	AttrPermitted    = attribute.Key("ccl.permitted")
	AttrVerifyValid  = attribute.Key("verify.valid")
	AttrVerifyFailed = attribute.Key("verify.failed_check")
)

const tracerName = "github.com/covenantlabs/covenant-core"

func tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// StartBuildSpan starts a span around covenant construction.
func StartBuildSpan(ctx context.Context, issuerID, beneficiaryID string) (context.Context, trace.Span) {
	return tracer().Start(ctx, "covenant.build", trace.WithAttributes(
		AttrIssuerID.String(issuerID),
		AttrBeneficiaryID.String(beneficiaryID),
	))
}

// StartVerifySpan starts a span around covenant or identity verification.
func StartVerifySpan(ctx context.Context, name, documentID string) (context.Context, trace.Span) {
	return tracer().Start(ctx, name, trace.WithAttributes(
		AttrCovenantID.String(documentID),
	))
}

// StartEvaluateSpan starts a span around a CCL evaluation.
func StartEvaluateSpan(ctx context.Context, action, resource string) (context.Context, trace.Span) {
	return tracer().Start(ctx, "ccl.evaluate", trace.WithAttributes(
		AttrAction.String(action),
		AttrResource.String(resource),
	))
}

// StartEvolveSpan starts a span around identity evolution.
func StartEvolveSpan(ctx context.Context, identityID, changeType string) (context.Context, trace.Span) {
	return tracer().Start(ctx, "identity.evolve", trace.WithAttributes(
		AttrIdentityID.String(identityID),
		AttrChangeType.String(changeType),
	))
}

// EndWithResult records the outcome of a verification-shaped operation on
// span, marking it as failed and naming the first failing check when valid
// is false.
func EndWithResult(span trace.Span, valid bool, firstFailedCheck string) {
	span.SetAttributes(AttrVerifyValid.Bool(valid))
	if !valid {
		span.SetAttributes(AttrVerifyFailed.String(firstFailedCheck))
	}
	span.End()
}
