package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	v := Get()

	assert.Equal(t, Version, v.Version)
	assert.Equal(t, Commit, v.GitCommit)
	assert.Equal(t, BuildTime, v.BuildTime)
	assert.NotEmpty(t, v.GoVersion)
	assert.Contains(t, v.Platform, "/")
}

func TestInfoString(t *testing.T) {
	v := Get()
	s := v.String()

	assert.Contains(t, s, "cppcat version")
	assert.Contains(t, s, v.Version)
	assert.Contains(t, s, v.GitCommit)
}
