package errors

import (
	goerrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type timeoutErr struct{}

func (timeoutErr) Error() string { return "timed out" }

func TestClassify(t *testing.T) {
	assert.Empty(t, Classify(nil))
	assert.Equal(t, "errors_errorstring", Classify(goerrors.New("boom")))
	assert.Equal(t, "errors_timeouterr", Classify(timeoutErr{}))
	// Wrapping does not change the label; the innermost error names it.
	assert.Equal(t, "errors_timeouterr", Classify(fmt.Errorf("sweep: %w", timeoutErr{})))
}
