package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/thriftpath/internal/core/domain"
)

func TestIncludeSet_Deduplicates(t *testing.T) {
	s := domain.NewIncludeSet("/a/b", "/a/b/", "/a/./b", "/c")

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"/a/b", "/c"}, s.Sorted())
}

func TestIncludeSet_Sorted(t *testing.T) {
	s := domain.NewIncludeSet("/z", "/m", "/a")

	assert.Equal(t, []string{"/a", "/m", "/z"}, s.Sorted())
}

func TestIncludeSet_Empty(t *testing.T) {
	s := domain.NewIncludeSet()

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Sorted())
}
