package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"valid", Config{Workbook: "projects.xlsx", LogLevel: "info"}, nil},
		{"empty log level is fine", Config{Workbook: "projects.xlsx"}, nil},
		{"missing workbook", Config{LogLevel: "info"}, ErrWorkbookEmpty},
		{"bad log level", Config{Workbook: "x.xlsx", LogLevel: "chatty"}, ErrLogLevelUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}
