package storage

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	objects      map[string][]byte
	contentTypes map[string]string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		objects:      make(map[string][]byte),
		contentTypes: make(map[string]string),
	}
}

func (f *fakeStorage) UploadFile(objectName string, reader io.Reader, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.objects[objectName] = data
	f.contentTypes[objectName] = contentType
	return nil
}

func TestUploadCharts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "monthly_revenue_chart.png")
	require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o644))

	st := newFakeStorage()
	require.NoError(t, UploadCharts(st, []string{path}))

	assert.Equal(t, []byte("png-bytes"), st.objects["monthly_revenue_chart.png"])
	assert.Equal(t, "image/png", st.contentTypes["monthly_revenue_chart.png"])
}

func TestUploadChartsMissingFile(t *testing.T) {
	st := newFakeStorage()

	err := UploadCharts(st, []string{filepath.Join(t.TempDir(), "nope.png")})

	assert.Error(t, err)
}

func TestUploadChartsNoPaths(t *testing.T) {
	st := newFakeStorage()

	require.NoError(t, UploadCharts(st, nil))
	assert.Empty(t, st.objects)
}
