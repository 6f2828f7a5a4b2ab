package reader

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	"gotest.tools/v3/assert"
)

const numbersText = "1234.5\n-17\n1e6\n"

func gzipped(t *testing.T, text string) []byte {
	var compressed bytes.Buffer
	writer := gzip.NewWriter(&compressed)
	_, err := writer.Write([]byte(text))
	assert.NilError(t, err)
	assert.NilError(t, writer.Close())
	return compressed.Bytes()
}

func zstdCompressed(t *testing.T, text string) []byte {
	var compressed bytes.Buffer
	writer, err := zstd.NewWriter(&compressed)
	assert.NilError(t, err)
	_, err = writer.Write([]byte(text))
	assert.NilError(t, err)
	assert.NilError(t, writer.Close())
	return compressed.Bytes()
}

func xzCompressed(t *testing.T, text string) []byte {
	var compressed bytes.Buffer
	writer, err := xz.NewWriter(&compressed)
	assert.NilError(t, err)
	_, err = writer.Write([]byte(text))
	assert.NilError(t, err)
	assert.NilError(t, writer.Close())
	return compressed.Bytes()
}

func readAll(t *testing.T, input io.Reader) string {
	decompressed, err := ZReader(input)
	assert.NilError(t, err)

	contents, err := io.ReadAll(decompressed)
	assert.NilError(t, err)
	return string(contents)
}

func TestZReaderPlain(t *testing.T) {
	assert.Equal(t, numbersText, readAll(t, strings.NewReader(numbersText)))
}

func TestZReaderShortAndEmpty(t *testing.T) {
	// Shorter than the longest magic number
	assert.Equal(t, "12\n", readAll(t, strings.NewReader("12\n")))
	assert.Equal(t, "", readAll(t, strings.NewReader("")))
}

func TestZReaderGzip(t *testing.T) {
	assert.Equal(t, numbersText, readAll(t, bytes.NewReader(gzipped(t, numbersText))))
}

func TestZReaderZstd(t *testing.T) {
	assert.Equal(t, numbersText, readAll(t, bytes.NewReader(zstdCompressed(t, numbersText))))
}

func TestZReaderZstdIsClosable(t *testing.T) {
	decompressed, err := ZReader(bytes.NewReader(zstdCompressed(t, numbersText)))
	assert.NilError(t, err)

	closer, ok := decompressed.(io.Closer)
	assert.Assert(t, ok, "zstd reader must be closable: %T", decompressed)

	contents, err := io.ReadAll(decompressed)
	assert.NilError(t, err)
	assert.Equal(t, numbersText, string(contents))
	assert.NilError(t, closer.Close())
}

func TestZReaderXz(t *testing.T) {
	assert.Equal(t, numbersText, readAll(t, bytes.NewReader(xzCompressed(t, numbersText))))
}

func TestZOpen(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "numbers.txt.gz")
	assert.NilError(t, os.WriteFile(filename, gzipped(t, numbersText), 0o600))

	file, err := ZOpen(filename)
	assert.NilError(t, err)
	defer file.Close()

	contents, err := io.ReadAll(file)
	assert.NilError(t, err)
	assert.Equal(t, numbersText, string(contents))
}

func TestZOpenMissingFile(t *testing.T) {
	_, err := ZOpen(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestZOpenZstd(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "numbers.txt.zst")
	assert.NilError(t, os.WriteFile(filename, zstdCompressed(t, numbersText), 0o600))

	file, err := ZOpen(filename)
	assert.NilError(t, err)

	contents, err := io.ReadAll(file)
	assert.NilError(t, err)
	assert.Equal(t, numbersText, string(contents))

	zfile, ok := file.(*zFile)
	assert.Assert(t, ok, "%T", file)
	assert.NilError(t, file.Close())

	_, ok = zfile.Reader.(io.Closer)
	assert.Assert(t, ok, "zstd decoder must be closed along with the file")

	_, err = zfile.file.Read(make([]byte, 1))
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestZOpenEmptyFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "empty.txt")
	assert.NilError(t, os.WriteFile(filename, nil, 0o600))

	file, err := ZOpen(filename)
	assert.NilError(t, err)

	contents, err := io.ReadAll(file)
	assert.NilError(t, err)
	assert.Equal(t, "", string(contents))
	assert.NilError(t, file.Close())
}
