package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/swipelist/internal/domain"
)

func TestFormatErrorForDisplay_Prefixes(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		prefix string
	}{
		{
			name:   "configuration error",
			err:    domain.NewConfigError("Swipe container left", "not found"),
			prefix: configErrorPrefix,
		},
		{
			name:   "code exception",
			err:    classifySwipeError(errors.New("container has no width")),
			prefix: codeExceptionPrefix,
		},
		{
			name:   "other error",
			err:    errors.New("failed to load items"),
			prefix: genericErrorPrefix,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatErrorForDisplay(tt.err, 120)
			assert.True(t, strings.HasPrefix(got, tt.prefix), got)
		})
	}
}

func TestClassifySwipeError_KeepsConfigErrors(t *testing.T) {
	cfgErr := domain.NewConfigError("", "no 'On swipe action' left or right selected")

	assert.Same(t, cfgErr, classifySwipeError(cfgErr))
	assert.Nil(t, classifySwipeError(nil))
}

func TestFormatErrorForDisplay_TruncatesLongMessages(t *testing.T) {
	err := errors.New(strings.Repeat("word ", 60))

	got := formatErrorForDisplay(err, 40)

	lines := strings.Split(got, "\n")
	assert.Len(t, lines, maxErrorLines)
	assert.True(t, strings.HasSuffix(got, truncationMark))
}
