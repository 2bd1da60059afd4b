package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"satd/internal/domain"
)

func TestResultStyle(t *testing.T) {
	tests := []struct {
		name   string
		result domain.GeneralResult
		want   Color
	}{
		{"success", domain.ResultSuccess, ColorSuccess},
		{"icon not displayed", domain.ResultSuccessIconNotDisplayed, ColorSuccess},
		{"user terminated", domain.ResultSessionTerminatedByUser, ColorUser},
		{"no response", domain.ResultNoResponseFromUser, ColorUser},
		{"me unable", domain.ResultMEUnableToProcess, ColorFailure},
		{"bip error", domain.ResultBIPError, ColorFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResultStyle(tt.result).GetForeground())
		})
	}
}
