package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Storage is an interface for uploading files.
type Storage interface {
	UploadFile(objectName string, reader io.Reader, contentType string) error
}

// UploadCharts pushes rendered chart files to object storage under their
// base names.
func UploadCharts(st Storage, paths []string) error {
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening chart '%s': %w", path, err)
		}

		err = st.UploadFile(filepath.Base(path), f, "image/png")
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
