package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"selectest.dev/pkg/selectest/internal/domain"
)

func TestGetResmokeArg(t *testing.T) {
	tests := []struct {
		name  string
		args  string
		want  string
		found bool
	}{
		{"equals form", "--suites=core --storageEngine=wiredTiger", "core", true},
		{"space form", "--storageEngine=wiredTiger --suites core", "core", true},
		{"absent", "--storageEngine=wiredTiger", "", false},
		{"flag without value", "--suites --jobs=4", "", false},
		{"prefix of another flag", "--suitesDir=x", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.GetResmokeArg(tt.args, "suites")
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRemoveResmokeArg(t *testing.T) {
	tests := []struct {
		name string
		args string
		want string
	}{
		{"equals form", "--suites=core --storageEngine=wiredTiger", "--storageEngine=wiredTiger"},
		{"space form", "--storageEngine=wiredTiger --suites core --jobs=2", "--storageEngine=wiredTiger --jobs=2"},
		{"only selector", "--suites=core", ""},
		{"absent is unchanged", "--storageEngine=wiredTiger  --jobs=2", "--storageEngine=wiredTiger  --jobs=2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.RemoveResmokeArg(tt.args, "suites"))
		})
	}
}
