package cache_test

import (
	"testing"

	"tourbook/shared/cache"

	"github.com/stretchr/testify/assert"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{name: "single", parts: []string{"limiter"}, want: "limiter"},
		{name: "several", parts: []string{"auth", "revoked", "abc"}, want: "auth:revoked:abc"},
		{name: "skips empty", parts: []string{"limiter", "", "10.0.0.1"}, want: "limiter:10.0.0.1"},
		{name: "none", parts: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cache.BuildCacheKey(tt.parts...))
		})
	}
}
