package reader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Reads one number per line. Blank lines and lines starting with # are
// ignored. Lines that don't parse as numbers are logged and skipped.
//
// The input may be compressed, see ZReader().
func ReadNumbers(input io.Reader) ([]float64, error) {
	decompressed, err := ZReader(input)
	if err != nil {
		return nil, err
	}
	if closer, ok := decompressed.(io.Closer); ok && decompressed != input {
		defer func() {
			if err := closer.Close(); err != nil {
				log.Debug("Failed to close decompressor: ", err)
			}
		}()
	}

	numbers := []float64{}
	lineNumber := 0
	scanner := bufio.NewScanner(decompressed)
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		number, err := strconv.ParseFloat(line, 64)
		if err != nil {
			log.Warnf("Line %d: Not a number, skipping: %q", lineNumber, line)
			continue
		}

		log.Tracef("Line %d: %v", lineNumber, number)
		numbers = append(numbers, number)
	}

	if err := scanner.Err(); err != nil {
		return numbers, fmt.Errorf("reading line %d: %w", lineNumber+1, err)
	}

	return numbers, nil
}
