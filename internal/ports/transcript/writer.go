// Package transcript records game events as JSON lines, one protojson
// encoded Struct per event.
package transcript

import (
	"fmt"
	"io"
	"os"
	"sync"

	"bigtwo/internal/app"

	"github.com/heroiclabs/nakama-common/runtime"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Writer is an app.Reporter appending each event to w.
type Writer struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
	logger runtime.Logger
	err    error
}

var _ app.Reporter = (*Writer)(nil)

// NewWriter wraps w. logger may be nil.
func NewWriter(w io.Writer, logger runtime.Logger) *Writer {
	return &Writer{w: w, logger: logger}
}

// Create truncates or creates the file at path.
func Create(path string, logger runtime.Logger) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create transcript: %w", err)
	}
	tw := NewWriter(f, logger)
	tw.closer = f
	return tw, nil
}

// Report encodes ev. A failed write is logged and kept for Err; later events
// are dropped.
func (t *Writer) Report(ev app.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err != nil {
		return
	}

	line, err := Encode(ev)
	if err == nil {
		_, err = t.w.Write(append(line, '\n'))
	}
	if err != nil {
		t.err = fmt.Errorf("transcript %s: %w", ev.Kind, err)
		if t.logger != nil {
			t.logger.Error("Report: Failed to record event: %v", t.err)
		}
	}
}

// Err returns the first write error, if any.
func (t *Writer) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Close closes the underlying file when the Writer owns one.
func (t *Writer) Close() error {
	if t.closer == nil {
		return nil
	}
	return t.closer.Close()
}

// Encode renders one event as compact protojson.
func Encode(ev app.Event) ([]byte, error) {
	s, err := structpb.NewStruct(eventToMap(ev))
	if err != nil {
		return nil, fmt.Errorf("build struct: %w", err)
	}
	return protojson.MarshalOptions{}.Marshal(s)
}

// Decode parses one transcript line.
func Decode(line []byte) (map[string]interface{}, error) {
	var s structpb.Struct
	if err := protojson.Unmarshal(line, &s); err != nil {
		return nil, err
	}
	return s.AsMap(), nil
}
