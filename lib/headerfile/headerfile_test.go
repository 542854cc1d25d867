package headerfile_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/duneanalytics/blockchain-headers/lib/headerfile"
	"github.com/duneanalytics/blockchain-headers/models"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

// testHeaders returns n distinct headers, index 0 is the oldest
func testHeaders(n int) []models.BlockHeader {
	headers := make([]models.BlockHeader, n)
	for i := range headers {
		for j := range headers[i] {
			headers[i][j] = byte(i + j)
		}
	}
	return headers
}

// tipFirst builds a sequence the way the walker does, newest header first
func tipFirst(headers []models.BlockHeader) *models.HeaderSequence {
	seq := models.NewHeaderSequence()
	for i := len(headers) - 1; i >= 0; i-- {
		seq.Push(headers[i])
	}
	return seq
}

func ReadHeaders(r io.Reader) ([]models.BlockHeader, error) {
	var headers []models.BlockHeader
	for {
		var header models.BlockHeader
		_, err := io.ReadFull(r, header[:])
		if errors.Is(err, io.EOF) {
			return headers, nil
		}
		if err != nil {
			return nil, err
		}
		headers = append(headers, header)
	}
}

func TestWriteHeaders(t *testing.T) {
	tests := []struct {
		name    string
		headers []models.BlockHeader
	}{
		{name: "empty", headers: nil},
		{name: "single header", headers: testHeaders(1)},
		{name: "multiple headers", headers: testHeaders(5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			n, err := headerfile.WriteHeaders(&buf, tipFirst(tt.headers))
			require.NoError(t, err)
			require.Equal(t, len(tt.headers), n)
			require.Equal(t, models.HeaderSize*len(tt.headers), buf.Len())

			rebuilt, err := ReadHeaders(&buf)
			require.NoError(t, err)
			require.Equal(t, len(tt.headers), len(rebuilt))
			for i := range tt.headers {
				require.Equal(t, tt.headers[i], rebuilt[i])
			}
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteHeadersError(t *testing.T) {
	_, err := headerfile.WriteHeaders(failingWriter{}, tipFirst(testHeaders(2)))
	require.Error(t, err)
}

func TestSave(t *testing.T) {
	headers := testHeaders(3)
	path := filepath.Join(t.TempDir(), "output.bin")
	// an existing file is replaced
	require.NoError(t, os.WriteFile(path, []byte("previous run, much longer than the new content..."), 0o644))

	require.NoError(t, headerfile.Save(path, tipFirst(headers), headerfile.Options{}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, content, 3*models.HeaderSize)
	require.Equal(t, headers[0][:], content[:models.HeaderSize])
	require.Equal(t, headers[2][:], content[2*models.HeaderSize:])

	// no temporary files are left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestSaveCompressed(t *testing.T) {
	headers := testHeaders(50)
	path := filepath.Join(t.TempDir(), "output.bin.zst")
	require.NoError(t, headerfile.Save(path, tipFirst(headers), headerfile.Options{Compress: true}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoder, err := zstd.NewReader(f)
	require.NoError(t, err)
	defer decoder.Close()

	rebuilt, err := ReadHeaders(decoder)
	require.NoError(t, err)
	require.Equal(t, headers, rebuilt)
}

func TestSaveMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does", "not", "exist", "output.bin")
	err := headerfile.Save(path, tipFirst(testHeaders(1)), headerfile.Options{})
	require.Error(t, err)
	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}
