package ccl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateTraced(t *testing.T) {
	doc, err := Parse("permit read on '/data/**'")
	require.NoError(t, err)

	result := EvaluateTraced(context.Background(), &doc, "read", "/data/reports", map[string]string{})
	assert.True(t, result.Permitted)
}
