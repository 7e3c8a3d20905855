package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeTarget(t *testing.T) {
	info, ok := DescribeTarget("https://CDN.Example.co.uk:8443/img/pic.png?x=1")
	require.True(t, ok)
	assert.Equal(t, "https", info.Scheme)
	assert.Equal(t, "cdn.example.co.uk", info.Host)
	assert.Equal(t, "https://cdn.example.co.uk:8443", info.Origin)
	assert.Equal(t, "example.co.uk", info.Site)
}

func TestDescribeTargetWithIP(t *testing.T) {
	info, ok := DescribeTarget("http://127.0.0.1:3000/")
	require.True(t, ok)
	assert.Equal(t, "http://127.0.0.1:3000", info.Origin)
	assert.Empty(t, info.Site)
}

func TestDescribeTargetRejectsRelative(t *testing.T) {
	_, ok := DescribeTarget("/just/a/path")
	assert.False(t, ok)
	_, ok = DescribeTarget("%zz")
	assert.False(t, ok)
}
