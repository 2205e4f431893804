package api

import (
	"io"
	"os"
	"path/filepath"
)

const streamChunkSize = 64 << 10

// openVideo opens a video file inside dir, refusing anything that resolves
// outside it.
func openVideo(dir, name string) (*os.File, error) {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		_ = f.Close()
		return nil, os.ErrNotExist
	}
	return f, nil
}

// copyChunks streams src to dst in fixed-size chunks. The file handle is
// the caller's to close; this only moves bytes.
func copyChunks(dst io.Writer, src io.Reader) error {
	buf := make([]byte, streamChunkSize)
	_, err := io.CopyBuffer(dst, src, buf)
	return err
}
