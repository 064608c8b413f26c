package errors

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	base := stderrors.New("connection refused")
	wrapped := Wrap(base, "upload media")

	assert.Equal(t, "upload media: connection refused", wrapped.Error())
	assert.ErrorIs(t, wrapped, base)
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "anything"))
	assert.Nil(t, Wrapf(nil, "anything %d", 1))
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(fs.ErrNotExist, "open media file %s", "clip.mp4")
	assert.Equal(t, "open media file clip.mp4: file does not exist", wrapped.Error())
	assert.ErrorIs(t, wrapped, fs.ErrNotExist)
}

func TestIs_MatchesByMessage(t *testing.T) {
	err := Wrap(ErrEmptyTranscript, "poll transcript")
	assert.ErrorIs(t, err, ErrEmptyTranscript)
	assert.NotErrorIs(t, err, ErrEmptySummary)
}

func TestIs_NonPackageTarget(t *testing.T) {
	assert.NotErrorIs(t, New("boom"), stderrors.New("boom"))
}

func TestFieldHelpers(t *testing.T) {
	assert.EqualError(t, RequiredField("file"), "file is required")
	assert.EqualError(t, InvalidField("max_tokens", "must be positive"), "max_tokens is invalid: must be positive")
}
