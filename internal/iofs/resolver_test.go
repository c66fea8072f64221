package iofs_test

import (
	"path/filepath"
	"testing"

	"github.com/redbuttegarden/brahmsync/internal/iofs"
	"github.com/stretchr/testify/assert"
)

func TestMappedDriveResolver(t *testing.T) {
	r := iofs.NewResolver("")

	res := r.Resolve(`B:\Photos\Rosa`, "rosa_woodsii_01.jpg")
	assert.Equal(t, filepath.Join(`B:\Photos\Rosa`, "rosa_woodsii_01.jpg"), res)
}

func TestMountResolver(t *testing.T) {
	root := "/home/records/Box/AA BRAHMS Resized Photos"
	r := iofs.NewResolver(root)

	tests := []struct {
		name     string
		dir      string
		file     string
		expected string
	}{
		{
			name:     "drive prefix replaced by mount root",
			dir:      `B:\Rosa`,
			file:     "rosa_woodsii_01.jpg",
			expected: filepath.Join(root, "Rosa", "rosa_woodsii_01.jpg"),
		},
		{
			name:     "nested backslash path normalized",
			dir:      `B:\Photos\Penstemon`,
			file:     "p_utahensis.jpg",
			expected: filepath.Join(root, "Photos", "Penstemon", "p_utahensis.jpg"),
		},
		{
			name:     "directories without the drive prefix pass through",
			dir:      "/mnt/photos",
			file:     "a.jpg",
			expected: filepath.Join("/mnt/photos", "a.jpg"),
		},
		{
			name:     "byte-order mark stripped from file name",
			dir:      `B:\Rosa`,
			file:     "\ufeffrosa.jpg",
			expected: filepath.Join(root, "Rosa", "rosa.jpg"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Resolve(tt.dir, tt.file))
		})
	}
}
