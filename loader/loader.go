// Package loader reads NC program files. Programs saved by Japanese machine
// controls and CAM tools are frequently CP932 (Shift-JIS) encoded, so input
// that is not valid UTF-8 is decoded as CP932 before analysis.
package loader

import (
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
)

// ReadFile returns the program text at path as UTF-8.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read program file: %w", err)
	}

	text, err := Decode(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	return text, nil
}

// Decode converts raw program bytes to a UTF-8 string, falling back to CP932
// when the bytes are not valid UTF-8.
func Decode(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := japanese.ShiftJIS.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode program as CP932: %w", err)
	}

	return string(decoded), nil
}
