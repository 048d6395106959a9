package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewValidationError("Resume content is required"))
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestIsKind_WalksNestedErrors(t *testing.T) {
	inner := requestFailed(ProviderOpenAI, errAPI)
	outer := newError(KindOptimizationFailed, inner, "outer")

	assert.True(t, IsKind(outer, KindOptimizationFailed))
	assert.True(t, IsKind(outer, KindProviderRequestFailed))
	assert.False(t, IsKind(outer, KindInvalidModel))
	assert.ErrorIs(t, outer, errAPI)
}

func TestError_Message(t *testing.T) {
	assert.Equal(t, "invalid_model", (&Error{Kind: KindInvalidModel}).Error())
	assert.Equal(t, "API Error", (&Error{Kind: KindUnknown, Err: errAPI}).Error())
}
