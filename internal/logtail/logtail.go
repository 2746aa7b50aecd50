package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// DefaultLines is how much child output is echoed after an early exit.
const DefaultLines = 20

// Read returns at most maxLines from the end of the file at path. A missing
// file yields no lines and no error.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count, next := 0, 0
	for scanner.Scan() {
		ring[next] = scanner.Text()
		next = (next + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	if count < maxLines {
		return append([]string(nil), ring[:count]...), nil
	}
	lines := make([]string, 0, count)
	lines = append(lines, ring[next:]...)
	lines = append(lines, ring[:next]...)
	return lines, nil
}

// Dump writes the last maxLines of path to w, each line prefixed.
func Dump(w io.Writer, path, prefix string, maxLines int) error {
	lines, err := Read(path, maxLines)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%s%s\n", prefix, line); err != nil {
			return err
		}
	}
	return nil
}
