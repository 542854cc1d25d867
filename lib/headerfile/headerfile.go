package headerfile

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/duneanalytics/blockchain-headers/models"
	"github.com/go-errors/errors"
	"github.com/klauspost/compress/zstd"
)

type Options struct {
	// Compress wraps the output in a zstd stream. The decompressed content is unchanged.
	Compress bool
}

// WriteHeaders writes the headers genesis first, 80 bytes each, with no delimiters,
// length prefixes or any other framing. It returns the number of headers written.
func WriteHeaders(out io.Writer, headers *models.HeaderSequence) (int, error) {
	written := 0
	err := headers.Ascending(func(header models.BlockHeader) error {
		if _, err := out.Write(header[:]); err != nil {
			return err
		}
		written++
		return nil
	})
	return written, err
}

// Save writes the headers to path, replacing any existing file. The content goes to a
// temporary file in the same directory that is renamed over path once it is complete,
// so path never holds a partial result.
func Save(path string, headers *models.HeaderSequence, opts Options) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Errorf("create output file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	buffered := bufio.NewWriter(tmp)
	var out io.Writer = buffered
	var compressor *zstd.Encoder
	if opts.Compress {
		compressor, err = zstd.NewWriter(buffered, zstd.WithEncoderLevel(zstd.SpeedDefault), zstd.WithEncoderConcurrency(1))
		if err != nil {
			return err
		}
		out = compressor
	}

	if _, err = WriteHeaders(out, headers); err != nil {
		return errors.Errorf("write headers: %w", err)
	}
	if compressor != nil {
		if err = compressor.Close(); err != nil {
			return errors.Errorf("close compressor: %w", err)
		}
	}
	if err = buffered.Flush(); err != nil {
		return errors.Errorf("flush output file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return errors.Errorf("sync output file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return errors.Errorf("close output file: %w", err)
	}
	// CreateTemp uses 0600
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return errors.Errorf("chmod output file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.Errorf("rename output file: %w", err)
	}
	return nil
}
