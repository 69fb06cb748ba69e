package requestid

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	id, ok := FromContext(WithID(context.Background(), "req-1"))
	assert.True(t, ok)
	assert.Equal(t, "req-1", id)

	_, ok = FromContext(context.Background())
	assert.False(t, ok)

	_, ok = FromContext(WithID(context.Background(), ""))
	assert.False(t, ok)
}
