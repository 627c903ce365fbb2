package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
	}{
		{name: "production config", debug: false},
		{name: "development config", debug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := Setup(tt.debug, "cppcat", "test")
			require.NoError(t, err)
			require.NotNil(t, logger)

			// Setup installs the logger as the zap global.
			assert.Same(t, logger, zap.L())
		})
	}
}
