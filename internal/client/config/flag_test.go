package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	// Test cases
	tests := []struct {
		initial     Config
		expected    Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd", "-a", "http://127.0.0.1:5000", "-t", "7", "-d", "sess.db"},
			expected: Config{APIBaseURL: "http://127.0.0.1:5000", RequestTimeout: 7 * time.Second, SessionDBPath: "sess.db"}},
		{name: "Test2 flags not set keep existing values", args: []string{"cmd"},
			initial:  Config{APIBaseURL: "http://example.org", RequestTimeout: 5 * time.Second, SessionDBPath: "keep.db"},
			expected: Config{APIBaseURL: "http://example.org", RequestTimeout: 5 * time.Second, SessionDBPath: "keep.db"}},
		{name: "Test3 incorrect timeout", args: []string{"cmd", "-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			savedArgs := os.Args
			defer func() { os.Args = savedArgs }()
			os.Args = tt.args

			config := tt.initial

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(&config) })
				assert.Equal(t, tt.expected, config)
			} else {
				require.Panics(t, func() { parseFlags(&config) })
			}
		})
	}
}
