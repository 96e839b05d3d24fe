package tunnel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListenRequiresAuthToken(t *testing.T) {
	ln, url, err := Listen(context.Background(), "")

	assert.ErrorIs(t, err, ErrMissingAuthToken)
	assert.Nil(t, ln)
	assert.Empty(t, url)
}
