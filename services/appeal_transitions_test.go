package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"appeals-api/models"
)

func TestNextStatusOnResponse(t *testing.T) {
	cases := []struct {
		current string
		next    string
		ok      bool
	}{
		{models.StatusCodeReceived, models.StatusCodeResponded, true},
		{models.StatusCodeInProgress, models.StatusCodeResponded, true},
		{models.StatusCodeResponded, "", false},
		{models.StatusCodeClosed, "", false},
		{"unknown", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.current, func(t *testing.T) {
			next, ok := NextStatusOnResponse(tc.current)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.next, next)
		})
	}
}
