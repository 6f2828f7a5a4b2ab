package reader

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	log "github.com/sirupsen/logrus"
	"github.com/ulikunitz/xz"
)

var gzipMagic = []byte{0x1f, 0x8b}
var bzip2Magic = []byte{0x42, 0x5a, 0x68}
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
var xzMagic = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}

// ZReader returns a reader that decompresses the input stream. Any input stream
// compression will be automatically detected. Uncompressed streams will be
// returned as-is.
//
// If the returned reader is an io.Closer, callers must close it when done. This
// does not close input.
func ZReader(input io.Reader) (io.Reader, error) {
	// Read the first 6 bytes to determine the compression type
	firstBytes := make([]byte, len(xzMagic))
	count, err := io.ReadFull(input, firstBytes)
	if err == io.EOF {
		// Stream was empty
		return input, nil
	}
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("failed to read stream: %w", err)
	}
	firstBytes = firstBytes[:count]

	// Reset input reader to start of stream
	input = io.MultiReader(bytes.NewReader(firstBytes), input)

	switch {
	case bytes.HasPrefix(firstBytes, gzipMagic):
		log.Debug("Input stream is gzip compressed")
		return gzip.NewReader(input)
	case bytes.HasPrefix(firstBytes, zstdMagic):
		log.Debug("Input stream is zstd compressed")
		decoder, err := zstd.NewReader(input)
		if err != nil {
			return nil, err
		}

		// Closing this stops the decoder goroutines
		return decoder.IOReadCloser(), nil
	case bytes.HasPrefix(firstBytes, bzip2Magic):
		log.Debug("Input stream is bzip2 compressed")
		return bzip2.NewReader(input), nil
	case bytes.HasPrefix(firstBytes, xzMagic):
		log.Debug("Input stream is xz compressed")
		return xz.NewReader(input)
	default:
		log.Debug("Input stream is assumed to be uncompressed")
		return input, nil
	}
}

// ZOpen opens a possibly compressed file for reading. Closing the returned
// reader closes the file.
func ZOpen(filename string) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	decompressed, err := ZReader(file)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return &zFile{Reader: decompressed, file: file}, nil
}

// Closes both the decompressor (if it needs closing) and the file
type zFile struct {
	io.Reader
	file *os.File
}

func (z *zFile) Close() error {
	var decompressorErr error
	if closer, ok := z.Reader.(io.Closer); ok && closer != io.Closer(z.file) {
		decompressorErr = closer.Close()
	}

	fileErr := z.file.Close()
	if decompressorErr != nil {
		return decompressorErr
	}
	return fileErr
}
