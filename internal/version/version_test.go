package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	t.Parallel()

	s := String()
	assert.Contains(t, s, Name)
	assert.Contains(t, s, Version)
	assert.Contains(t, s, "commit "+GitCommit)
}
