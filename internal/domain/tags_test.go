package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, NormalizeTags([]string{"c", "a", "b", "a"}))
	assert.Equal(t, []string{"x"}, NormalizeTags([]string{" x ", "", "x"}))
	assert.Equal(t, []string{}, NormalizeTags(nil))
}

func TestSplitAndJoinTags(t *testing.T) {
	assert.Equal(t, []string{"backup", "prod"}, SplitTags("prod  backup"))
	assert.Equal(t, []string{}, SplitTags(""))
	assert.Equal(t, "a b", JoinTags([]string{"b", "a"}))
	assert.Equal(t, "", JoinTags(nil))
}

func TestChangeResultFailed(t *testing.T) {
	assert.False(t, ChangeResult{}.Failed())
	assert.True(t, ChangeResult{Err: assert.AnError}.Failed())
}
