package binspec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "syntax", KindSyntax.String())
	assert.Equal(t, "resolution", KindResolution.String())
	assert.Equal(t, "malformed-bin", KindMalformedBin.String())
	assert.Equal(t, "overlap", KindOverlap.String())

	assert.Equal(t, "unknown", Kind(250).String())
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := errSyntax(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Bin specification is not valid: boom.", err.Error())

	assert.Nil(t, errResolution(0).Unwrap())
	assert.Nil(t, errMalformedBin(0, 0).Unwrap())
	assert.Nil(t, errOverlap(15, 25, 10, 20).Unwrap())
}

func TestErrorOrdinals(t *testing.T) {
	err := errMalformedBin(2, 1)
	assert.Equal(t, 1, err.Group)
	assert.Equal(t, 2, err.Bin)
	assert.Equal(t, "Bin 2 in group 1 is malformed.", err.Error())

	err = errOverlap(15, 25, 10, 20)
	assert.Equal(t, -1, err.Group)
	assert.Equal(t, -1, err.Bin)
}
