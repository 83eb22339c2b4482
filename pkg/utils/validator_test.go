package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type windowInput struct {
	Date  string  `validate:"required,datetime=2006-01-02"`
	Start string  `validate:"required,hhmm"`
	Kind  string  `validate:"omitempty,oneof=mentor mentee"`
	Price float64 `validate:"gte=0"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name  string
		input windowInput
		want  map[string]string
	}{
		{
			name:  "valid",
			input: windowInput{Date: "2025-06-01", Start: "9:30"},
		},
		{
			name:  "bad clock time",
			input: windowInput{Date: "2025-06-01", Start: "25:00"},
			want:  map[string]string{"Start": "Must be a time in HH:MM format"},
		},
		{
			name:  "bad date and missing time",
			input: windowInput{Date: "01/06/2025"},
			want: map[string]string{
				"Date":  "Must match the format 2006-01-02",
				"Start": "This field is required",
			},
		},
		{
			name:  "oneof and gte",
			input: windowInput{Date: "2025-06-01", Start: "10:00", Kind: "admin", Price: -1},
			want: map[string]string{
				"Kind":  "Must be one of: mentor, mentee",
				"Price": "Must be at least 0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateStruct(tt.input)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	got := FormatValidationErrors(map[string]string{"b": "two", "a": "one"})
	assert.Equal(t, "a: one; b: two", got)
}

func TestQueryHelpers(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("x", 1))
	assert.Equal(t, 1, ParseInt("0", 1))

	assert.Nil(t, ParseFloatPtr(""))
	assert.Nil(t, ParseFloatPtr("abc"))
	if f := ParseFloatPtr("4.5"); assert.NotNil(t, f) {
		assert.Equal(t, 4.5, *f)
	}

	assert.Equal(t, []string{"go", "career"}, SplitList(" go, ,career "))
	assert.Nil(t, SplitList(""))
}
