// Package report пишет результаты батчевых прогонов в json-файлы с
// таймстампом в имени, рядом с логами приложения.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const timestampLayout = "20060102_1504"

type Writer struct {
	dir string
	now func() time.Time
}

func New(dir string) *Writer {
	return &Writer{
		dir: dir,
		now: time.Now,
	}
}

// WithClock подменяет источник времени, нужен тестам.
func (w *Writer) WithClock(now func() time.Time) *Writer {
	w.now = now
	return w
}

// Write сохраняет data как <name>_YYYYMMDD_HHMM.json и возвращает путь
// к созданному файлу.
func (w *Writer) Write(name string, data any) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	path := filepath.Join(w.dir, fmt.Sprintf("%s_%s.json", name, w.now().Format(timestampLayout)))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write report file: %w", err)
	}

	return path, nil
}
