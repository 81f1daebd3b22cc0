package journal

import (
	"context"
	"encoding/json"
	"os"
	"sync"
)

// File appends one JSON line per record, in arrival order. Each record
// is written in a single write call so concurrent appenders cannot
// interleave inside a line.
type File struct {
	mu sync.Mutex
	f  *os.File
}

func OpenFile(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &File{f: f}, nil
}

func (j *File) Append(ctx context.Context, record any) error {
	b, err := json.Marshal(record)
	if err != nil {
		return err
	}
	b = append(b, '\n')

	j.mu.Lock()
	defer j.mu.Unlock()
	_, err = j.f.Write(b)
	return err
}

func (j *File) Ping(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	_, err := j.f.Stat()
	return err
}

func (j *File) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.f.Close()
}
