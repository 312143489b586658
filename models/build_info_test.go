package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuildInfo(t *testing.T) {
	tests := []struct {
		name                  string
		version, date, commit string
		want                  BuildInfo
		wantString            string
	}{
		{
			name:    "injected",
			version: "v1.4.0", date: "2026-10-01", commit: "abc123",
			want:       BuildInfo{Version: "v1.4.0", Date: "2026-10-01", Commit: "abc123"},
			wantString: "v1.4.0 (2026-10-01, abc123)",
		},
		{
			name:    "missing values",
			version: "", date: "  ", commit: "abc123",
			want:       BuildInfo{Version: "N/A", Date: "N/A", Commit: "abc123"},
			wantString: "N/A (N/A, abc123)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewBuildInfo(tt.version, tt.date, tt.commit)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantString, got.String())
		})
	}
}

func TestBuildInfo_ZeroValueString(t *testing.T) {
	assert.Equal(t, "N/A (N/A, N/A)", BuildInfo{}.String())
}
