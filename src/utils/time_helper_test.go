package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetClosedBarBoundary(t *testing.T) {
	assertion := assert.New(t)

	// mid-bar: boundary is the open of the forming bar
	assertion.Equal(int64(900), GetClosedBarBoundary(1000, 900))
	assertion.Equal(int64(99900), GetClosedBarBoundary(100000, 900))

	// exactly on the boundary: the bar opening now is the forming one
	assertion.Equal(int64(1800), GetClosedBarBoundary(1800, 900))

	assertion.Equal(int64(0), GetClosedBarBoundary(899, 900))
	assertion.Equal(int64(86400), GetClosedBarBoundary(86401, 86400))
}

func TestGetNextBarBoundary(t *testing.T) {
	assertion := assert.New(t)

	assertion.Equal(int64(1800), GetNextBarBoundary(1000, 900))
	assertion.Equal(int64(2700), GetNextBarBoundary(1800, 900))
	assertion.Equal(int64(900), GetNextBarBoundary(899, 900))
}
