package main

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-story/internal/errors"
)

func TestReportError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		wantCode int
		wantOut  []string
		quiet    bool
	}{
		{
			name:     "rule violation",
			err:      errors.FailedPrecondition("content has 2 issues"),
			wantCode: 4,
			wantOut:  []string{"Error: FAILED_PRECONDITION: content has 2 issues"},
		},
		{
			name:     "redis down",
			err:      errors.WrapWithCode(fmt.Errorf("dial tcp: connection refused"), errors.CodeUnavailable, "failed to connect to redis"),
			wantCode: 69,
			wantOut:  []string{"failed to connect to redis", "RPG_REDIS_ADDR"},
		},
		{
			name:     "interrupted",
			err:      errors.Wrap(context.Canceled, "play"),
			wantCode: 130,
			quiet:    true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}

			assert.Equal(t, tc.wantCode, reportError(out, tc.err))
			if tc.quiet {
				assert.Empty(t, out.String())
				return
			}
			for _, want := range tc.wantOut {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}
