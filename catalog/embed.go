package catalog

import (
	"embed"
	"os"
	"path/filepath"
)

//go:embed catalog.yaml
var catalogFS embed.FS

const fileName = "catalog.yaml"

// readCatalog prefers the on-disk copy (editable at runtime, watched for
// reloads) and falls back to the embedded default.
func readCatalog() ([]byte, error) {
	if data, err := os.ReadFile(DiskPath()); err == nil {
		return data, nil
	}
	return catalogFS.ReadFile(fileName)
}

// DiskPath is where a runtime override of the catalog lives.
func DiskPath() string {
	return filepath.Join("catalog", fileName)
}
