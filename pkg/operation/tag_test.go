package operation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagFileName(t *testing.T) {
	tests := []struct {
		name string
		file string
		tag  string
		want string
	}{
		{"simple", "report.txt", "old", "report-old.txt"},
		{"double_extension", "archive.tar.gz", "bak", "archive.tar-bak.gz"},
		{"no_extension", "Makefile", "bak", "Makefile-bak"},
		{"dot_file", ".env", "bak", ".env-bak"},
		{"dot_file_with_extension", ".config.yaml", "bak", ".config-bak.yaml"},
		{"trailing_dot", "notes.", "bak", "notes-bak."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TagFileName(tt.file, tt.tag))
		})
	}
}

func TestMatchName(t *testing.T) {
	tests := []struct {
		pattern string
		file    string
		want    bool
	}{
		{"*.*", "a.txt", true},
		{"*.*", "Makefile", false},
		{"*.txt", "b.log", false},
		{"*", ".hidden", false},
		{".*", ".hidden", true},
		{"data-?.csv", "data-1.csv", true},
		{"{a,b}.txt", "b.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"_"+tt.file, func(t *testing.T) {
			got, err := matchName(tt.pattern, tt.file)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
