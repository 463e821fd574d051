// Package audit keeps an append-only JSON-lines record of CLI commands.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	EventStart = "command_start"
	EventEnd   = "command_end"
)

// NewOperationID returns <name>_<YYYYMMDD>_<HHMMSS>_<8 hex chars>, in UTC.
func NewOperationID(name string) string {
	now := time.Now().UTC()
	return fmt.Sprintf("%s_%s_%s", name, now.Format("20060102_150405"), uuid.NewString()[:8])
}

type header struct {
	Timestamp   string `json:"timestamp"`
	Level       string `json:"level"`
	Event       string `json:"event"`
	Command     string `json:"command"`
	OperationID string `json:"operation_id"`
}

type startEntry struct {
	header
	Args map[string]any `json:"args"`
	User string         `json:"user"`
	Cwd  string         `json:"cwd"`
}

type endEntry struct {
	header
	Result   any     `json:"result"`
	ElapsedS float64 `json:"elapsed_s"`
}

type Log struct {
	path string
	mu   sync.Mutex
}

func New(path string) *Log {
	return &Log{path: path}
}

func (l *Log) Path() string {
	return l.path
}

func (l *Log) Start(command, operationID string, args map[string]any) error {
	if args == nil {
		args = map[string]any{}
	}

	cwd, _ := os.Getwd()

	return l.append(&startEntry{
		header: l.header(EventStart, command, operationID),
		Args:   args,
		User:   currentUser(),
		Cwd:    cwd,
	})
}

func (l *Log) End(command, operationID string, result any, elapsed time.Duration) error {
	return l.append(&endEntry{
		header:   l.header(EventEnd, command, operationID),
		Result:   result,
		ElapsedS: elapsed.Seconds(),
	})
}

// Failure is the result recorded for a command that returned an error.
func Failure(err error) map[string]any {
	return map[string]any{"success": false, "error": err.Error()}
}

func (l *Log) header(event, command, operationID string) header {
	return header{
		Timestamp:   time.Now().UTC().Format(time.RFC3339Nano),
		Level:       "INFO",
		Event:       event,
		Command:     command,
		OperationID: operationID,
	}
}

func (l *Log) append(e any) error {
	line, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encoding audit entry: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("creating audit dir: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("writing audit entry: %w", err)
	}

	return nil
}

func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}

	if u, err := user.Current(); err == nil {
		return u.Username
	}

	return "unknown"
}
