package apperr

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTemplate = &Error{Message: "invalid timer %d"}

func TestFmtMatchesTemplate(t *testing.T) {
	err := errTemplate.Fmt(3)

	assert.Equal(t, "invalid timer 3", err.Error())
	assert.ErrorIs(t, err, errTemplate)
	assert.NotErrorIs(t, err, &Error{Message: "invalid timer %d"})
}

func TestWrapKeepsCause(t *testing.T) {
	err := (&Error{Message: "flush failed"}).Wrap(fs.ErrPermission)

	assert.Equal(t, "flush failed: permission denied", err.Error())
	assert.True(t, errors.Is(err, fs.ErrPermission))
}

func TestFmtAfterWrap(t *testing.T) {
	tmpl := &Error{Message: "backend %q"}

	err := tmpl.Wrap(fs.ErrNotExist).Fmt("bolt")

	assert.ErrorIs(t, err, tmpl)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, `backend "bolt": file does not exist`, err.Error())
}
