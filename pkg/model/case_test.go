package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestCase_Passed(t *testing.T) {
	tests := []struct {
		name string
		c    Case
		want bool
	}{
		{"success without grading", Case{Success: true}, true},
		{"success graded pass", Case{Success: true, Pass: boolPtr(true)}, true},
		{"success graded fail", Case{Success: true, Pass: boolPtr(false)}, false},
		{"not successful", Case{Success: false}, false},
		{"not successful graded pass", Case{Success: false, Pass: boolPtr(true)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.Passed())
		})
	}
}

func TestCase_HasError(t *testing.T) {
	assert.False(t, Case{}.HasError())
	assert.True(t, Case{Error: "boom"}.HasError())
}
