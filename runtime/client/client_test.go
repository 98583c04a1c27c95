package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quillorm/quill/runtime/client"
)

func TestDriverName(t *testing.T) {
	tests := []struct {
		provider string
		driver   string
	}{
		{"postgresql", "postgres"},
		{"postgres", "postgres"},
		{"mysql", "mysql"},
		{"sqlite", "sqlite3"},
		{"mssql", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.driver, client.DriverName(tt.provider), tt.provider)
	}
}

func TestNewRejectsUnknownProvider(t *testing.T) {
	_, err := client.New("mssql", "dsn")
	assert.Error(t, err)
}
