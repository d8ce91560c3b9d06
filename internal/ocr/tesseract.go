package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultCommand is the tesseract binary looked up on PATH.
const DefaultCommand = "tesseract"

// Tesseract runs the tesseract CLI over an image file.
type Tesseract struct {
	// Command is the binary to invoke; DefaultCommand when empty.
	Command string
	// Languages are tesseract language codes joined with "+",
	// e.g. {"jpn", "eng"}.
	Languages []string
}

// NewTesseract creates an engine for the given language codes.
func NewTesseract(command string, languages ...string) *Tesseract {
	if command == "" {
		command = DefaultCommand
	}
	if len(languages) == 0 {
		languages = []string{"eng"}
	}
	return &Tesseract{Command: command, Languages: languages}
}

// Available reports whether the tesseract binary can be found.
func (t *Tesseract) Available() bool {
	_, err := exec.LookPath(t.Command)
	return err == nil
}

// Recognize runs tesseract and returns its stdout as the recognized text.
func (t *Tesseract) Recognize(ctx context.Context, imagePath string, onProgress Progress) (string, error) {
	langs := strings.Join(t.Languages, "+")
	report(onProgress, "recognizing "+langs, 0)

	cmd := exec.CommandContext(ctx, t.Command, imagePath, "stdout", "-l", langs)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("running %s: %w: %s", t.Command, err, strings.TrimSpace(stderr.String()))
	}

	report(onProgress, "recognized "+langs, 100)
	return stdout.String(), nil
}
