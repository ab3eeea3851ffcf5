package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "—", FormatDuration(0))
	assert.Equal(t, "—", FormatDuration(-time.Second))
	assert.Equal(t, "500µs", FormatDuration(500*time.Microsecond))
	assert.Equal(t, "1.234s", FormatDuration(1234*time.Millisecond+567*time.Microsecond))
}
