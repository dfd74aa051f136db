package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathMatches(t *testing.T) {
	defaultPath := []string{
		"Start", "Prepare Values for DMN", "Look-up Results",
		"Result / Decision Gateway", "Set Status Invalid", "End",
	}

	tests := []struct {
		name     string
		actual   []string
		expected []string
		want     bool
	}{
		{"Exact Key Steps", defaultPath, expectedPathInvalid, true},
		{"Empty Expectation Matches Anything", nil, nil, true},
		{"Empty Actual Fails", nil, expectedPathInvalid, false},
		{
			"Synonym Terminate For End",
			[]string{"Start", "Prepare", "Look-up", "Test Result", "Status 4000", "Terminate Event"},
			expectedPathInvalid,
			true,
		},
		{
			"Synonym 3000 For Valid",
			[]string{"Start", "Prepare", "Look-up", "Decision", "Status 3000", "Terminate"},
			expectedPathValid,
			true,
		},
		{
			"Out Of Order Fails",
			[]string{"Start", "Look-up", "Prepare", "Gateway", "Invalid", "End"},
			expectedPathInvalid,
			false,
		},
		{
			"Intermediate Steps Tolerated",
			[]string{"Start", "Audit", "Prepare Values", "Enrich", "Look-up Results", "Gateway", "Set Status Invalid", "Notify", "End"},
			expectedPathInvalid,
			true,
		},
		{
			"Wrong Branch Fails",
			[]string{"Start", "Prepare", "Look-up", "Gateway", "Set Status Valid", "End"},
			expectedPathInvalid,
			false,
		},
		{"Case Insensitive", []string{"START", "PREPARE", "LOOK-UP", "GATEWAY", "INVALID", "END"}, expectedPathInvalid, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pathMatches(tt.actual, tt.expected))
		})
	}
}
