package app

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "defaults to info", level: "", want: zerolog.InfoLevel},
		{name: "reads LOG_LEVEL", level: "debug", want: zerolog.DebugLevel},
		{name: "error level", level: "error", want: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.level)
			t.Setenv("LOG_PRETTY", "")

			InitializeLogger()
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}
