//go:build unit

package errs_test

import (
	"testing"

	"cellar-shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStackLines(t *testing.T) {
	assert.Nil(t, errs.StackLines(nil, 3))

	err := errs.Wrap(errs.New("stock ledger unavailable"), "reserve lines")
	lines := errs.StackLines(err, 3)
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "reserve lines")
	for _, l := range lines {
		assert.NotEmpty(t, l)
	}
}

func TestMarkKeepsKind(t *testing.T) {
	err := errs.Mark(errs.New("row missing"), errs.ErrNotFound)
	assert.True(t, errs.Is(err, errs.ErrNotFound))
	assert.Equal(t, errs.ErrNotFound, errs.Mark(nil, errs.ErrNotFound))
}
