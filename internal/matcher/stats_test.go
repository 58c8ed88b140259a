package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats(t *testing.T) {
	stats := Stats("Reach me at jane@example.com or 555-123-4567. Python python developer.")

	assert.Greater(t, stats.OriginalLength, 0)
	assert.Greater(t, stats.CleanedLength, 0)
	assert.True(t, stats.HasContactInfo)
	assert.True(t, stats.HasPhone)
	assert.Greater(t, stats.WordCount, 0)
	assert.Less(t, stats.UniqueWords, stats.WordCount+1)
}

func TestStats_Empty(t *testing.T) {
	stats := Stats("")

	assert.Zero(t, stats.WordCount)
	assert.Zero(t, stats.AverageWordLength)
	assert.False(t, stats.HasContactInfo)
	assert.False(t, stats.HasPhone)
}

func TestValidateText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"valid text", "Senior developer with five years of experience", false},
		{"too short", "short", true},
		{"too few words", "0123456789abcdef", true},
		{"empty", "", true},
		{"noise only", "@@@ ### $$$", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateText(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
