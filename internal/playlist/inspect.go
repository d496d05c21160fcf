package playlist

import (
	"bytes"
	"fmt"
	"os"
)

// Stats describes a playlist file on disk.
type Stats struct {
	Size  int64
	Lines int
	// Entries is -1 when the playlist could not be parsed.
	Entries int
}

// Inspect reads the playlist at path and reports its size, line count and
// number of channel entries. A final line without a trailing newline still
// counts as a line. When only parsing fails, the returned Stats still carries
// Size and Lines alongside the error.
func Inspect(path string) (*Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	st := &Stats{Size: int64(len(data)), Lines: countLines(data), Entries: -1}

	entries, err := Parse(bytes.NewReader(data))
	if err != nil {
		return st, fmt.Errorf("parse: %w", err)
	}
	st.Entries = len(entries)
	return st, nil
}

func countLines(data []byte) int {
	n := bytes.Count(data, []byte("\n"))
	if len(data) > 0 && data[len(data)-1] != '\n' {
		n++
	}
	return n
}
