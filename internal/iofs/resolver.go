package iofs

import (
	"path/filepath"
	"strings"

	"github.com/redbuttegarden/brahmsync/pkg/rbg"
)

// drivePrefix is the Windows drive the BRAHMS photo library lives on.
// Exports always reference image directories through this drive.
const drivePrefix = `B:\`

// NewResolver selects the path resolution strategy for image files.
// With an empty imageRoot the host is assumed to have the photo drive
// mapped and directory columns are used as-is. A non-empty imageRoot
// substitutes a local mount point (e.g. a cloud-storage sync directory)
// for the drive prefix and normalizes the separators.
func NewResolver(imageRoot string) rbg.PathResolver {
	if imageRoot == "" {
		return &mappedDriveResolver{}
	}
	return &mountResolver{root: imageRoot}
}

type mappedDriveResolver struct{}

func (r *mappedDriveResolver) Resolve(dir, file string) string {
	return filepath.Join(dir, stripBOM(file))
}

type mountResolver struct {
	root string
}

func (r *mountResolver) Resolve(dir, file string) string {
	if strings.HasPrefix(dir, drivePrefix) {
		rel := strings.TrimPrefix(dir, drivePrefix)
		rel = strings.ReplaceAll(rel, `\`, string(filepath.Separator))
		return filepath.Join(r.root, rel, stripBOM(file))
	}
	return filepath.Join(dir, stripBOM(file))
}

func stripBOM(s string) string {
	return strings.ReplaceAll(s, "\ufeff", "")
}
