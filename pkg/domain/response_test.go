package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	for _, s := range []string{"busy", "failed", "succeeded"} {
		r, err := ParseResponse(s)
		require.NoError(t, err)
		assert.Equal(t, s, r.String())
	}

	_, err := ParseResponse("done")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.EqualError(t, err, "invalid response: done")

	_, err = ParseResponse("")
	assert.EqualError(t, err, "invalid response: ")

	_, err = ParseResponse("unknown")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestResponse_Terminal(t *testing.T) {
	assert.True(t, ResponseFailed.Terminal())
	assert.True(t, ResponseSucceeded.Terminal())
	assert.False(t, ResponseBusy.Terminal())
	assert.False(t, ResponseUnknown.Terminal())
}

func TestTally_Add(t *testing.T) {
	var tally Tally
	for _, r := range []Response{ResponseBusy, ResponseFailed, ResponseSucceeded, ResponseSucceeded, ResponseUnknown} {
		tally = tally.Add(r)
	}
	assert.Equal(t, Tally{Busy: 1, Failed: 1, Succeeded: 2}, tally)
	assert.Equal(t, 4, tally.Total())
}
