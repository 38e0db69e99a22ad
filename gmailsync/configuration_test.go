// SPDX-License-Identifier: GPL-3.0-or-later
package gmailsync

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDryRun(t *testing.T) {
	cfg := &configuration{}
	err := DryRun()(cfg)

	assert.Equal(t, cfg, &configuration{DryRun: true})
	assert.Nil(t, err)
}

func TestAfter(t *testing.T) {
	after := time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)

	cfg := &configuration{}
	err := After(after)(cfg)

	assert.Equal(t, cfg, &configuration{After: after})
	assert.Nil(t, err)
}

func TestBatchSize(t *testing.T) {
	tests := []struct {
		name          string
		input         int
		cfg           *configuration
		expected      *configuration
		expectedError error
	}{
		{"ok", 25, &configuration{}, &configuration{BatchSize: 25}, nil},
		{"zero", 0, &configuration{}, nil, fmt.Errorf("BatchSize must be positive")},
		{"negative", -1, &configuration{}, nil, fmt.Errorf("BatchSize must be positive")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := BatchSize(tc.input)(tc.cfg)
			if tc.expected != nil {
				assert.Equal(t, tc.expected, tc.cfg)
				assert.Nil(t, err)
			} else {
				assert.Equal(t, tc.expectedError, err)
			}
		})
	}
}

func TestBatchMaxBytes(t *testing.T) {
	tests := []struct {
		name          string
		input         int64
		cfg           *configuration
		expected      *configuration
		expectedError error
	}{
		{"ok", 1024, &configuration{}, &configuration{BatchMaxBytes: 1024}, nil},
		{"zero", 0, &configuration{}, nil, fmt.Errorf("BatchMaxBytes must be positive")},
		{"negative", -5, &configuration{}, nil, fmt.Errorf("BatchMaxBytes must be positive")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := BatchMaxBytes(tc.input)(tc.cfg)
			if tc.expected != nil {
				assert.Equal(t, tc.expected, tc.cfg)
				assert.Nil(t, err)
			} else {
				assert.Equal(t, tc.expectedError, err)
			}
		})
	}
}
