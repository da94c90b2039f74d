package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeFileHeaders(t *testing.T, names ...string) []*multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, name := range names {
		part, err := writer.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = part.Write([]byte("content-of-" + name))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["images"]
}

func TestLocalImageStore(t *testing.T) {
	t.Run("stores files preserving order", func(t *testing.T) {
		root := t.TempDir()
		store := NewLocalImageStore(root)

		files := makeFileHeaders(t, "front.jpg", "kitchen.jpg", "garden.jpg")
		paths, err := store.Store(context.Background(), files, "owner-1")
		require.NoError(t, err)

		require.Len(t, paths, 3)
		assert.True(t, strings.HasSuffix(paths[0], "_front.jpg"))
		assert.True(t, strings.HasSuffix(paths[1], "_kitchen.jpg"))
		assert.True(t, strings.HasSuffix(paths[2], "_garden.jpg"))

		for i, path := range paths {
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "content-of-"+files[i].Filename, string(data))

			rel, err := filepath.Rel(root, path)
			require.NoError(t, err)
			parts := strings.Split(rel, string(filepath.Separator))
			require.Len(t, parts, 3)
			assert.Equal(t, "owner-1", parts[0])
		}
	})

	t.Run("every invocation gets its own listing directory", func(t *testing.T) {
		root := t.TempDir()
		store := NewLocalImageStore(root)

		first, err := store.Store(context.Background(), makeFileHeaders(t, "a.jpg"), "owner-1")
		require.NoError(t, err)
		second, err := store.Store(context.Background(), makeFileHeaders(t, "a.jpg"), "owner-1")
		require.NoError(t, err)

		assert.NotEqual(t, filepath.Dir(first[0]), filepath.Dir(second[0]))
	})

	t.Run("strips directory components from upload names", func(t *testing.T) {
		root := t.TempDir()
		store := NewLocalImageStore(root)

		paths, err := store.Store(context.Background(), makeFileHeaders(t, "../../escape.jpg"), "owner-1")
		require.NoError(t, err)
		require.Len(t, paths, 1)

		rel, err := filepath.Rel(root, paths[0])
		require.NoError(t, err)
		assert.False(t, strings.HasPrefix(rel, ".."))
		assert.True(t, strings.HasSuffix(paths[0], "_escape.jpg"))
	})

	t.Run("rejects empty upload set", func(t *testing.T) {
		store := NewLocalImageStore(t.TempDir())
		_, err := store.Store(context.Background(), nil, "owner-1")
		require.Error(t, err)
	})
}
