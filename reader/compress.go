package reader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec identifies the compression of an input file
type Codec string

const (
	CodecNone   Codec = ""
	CodecGzip   Codec = "gzip"
	CodecZstd   Codec = "zstd"
	CodecLZ4    Codec = "lz4"
	CodecBrotli Codec = "brotli"
)

var codecExtensions = map[string]Codec{
	".gz":  CodecGzip,
	".zst": CodecZstd,
	".lz4": CodecLZ4,
	".br":  CodecBrotli,
}

// DetectCodec returns the codec implied by the file extension of path.
func DetectCodec(path string) Codec {
	return codecExtensions[strings.ToLower(filepath.Ext(path))]
}

// TrimCodecExt strips a compression extension from path, if any.
func TrimCodecExt(path string) string {
	if DetectCodec(path) == CodecNone {
		return path
	}
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// Open opens path for reading, transparently decompressing it according to
// its extension. The caller must Close the returned reader.
func Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	rc, err := NewDecompressor(file, DetectCodec(path))
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &stackedCloser{ReadCloser: rc, file: file}, nil
}

// NewDecompressor wraps r with a decoder for codec. Closing the result does
// not close r.
func NewDecompressor(r io.Reader, codec Codec) (io.ReadCloser, error) {
	switch codec {
	case CodecNone:
		return io.NopCloser(r), nil
	case CodecGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		return zr, nil
	case CodecZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to open zstd stream: %w", err)
		}
		return zr.IOReadCloser(), nil
	case CodecLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case CodecBrotli:
		return io.NopCloser(brotli.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("unsupported codec %q", codec)
	}
}

// stackedCloser closes the decoder and then the underlying file
type stackedCloser struct {
	io.ReadCloser
	file *os.File
}

func (s *stackedCloser) Close() error {
	err := s.ReadCloser.Close()
	if closeErr := s.file.Close(); err == nil {
		err = closeErr
	}
	return err
}
