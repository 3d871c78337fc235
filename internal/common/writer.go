package common

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// Writer accumulates generated lines before they are flushed to a file.
type Writer struct {
	buf bytes.Buffer
}

func NewWriter() *Writer {
	return &Writer{}
}

// Println writes each row followed by a newline. Rows may span several lines.
func (w *Writer) Println(rows ...string) {
	for _, row := range rows {
		w.buf.WriteString(row)
		w.buf.WriteByte('\n')
	}
}

func (w *Writer) Printf(format string, args ...any) {
	w.Println(fmt.Sprintf(format, args...))
}

// Indented writes rows prefixed with four spaces.
func (w *Writer) Indented(rows ...string) {
	for _, row := range rows {
		w.Println("    " + row)
	}
}

// Block writes a multi-line block as a single row, e.g. a rendered template.
func (w *Writer) Block(block string) {
	w.Println(strings.TrimSuffix(block, "\n"))
}

func (w *Writer) String() string {
	return w.buf.String()
}

func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// WriteToFile truncates filePath and writes the accumulated content.
func (w *Writer) WriteToFile(filePath string) error {
	return os.WriteFile(filePath, w.buf.Bytes(), 0o644)
}

// AppendToFile appends the accumulated content, creating the file if needed.
func (w *Writer) AppendToFile(filePath string) error {
	f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(w.buf.Bytes()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
