// Package ocr provides the recognition collaborator: an engine interface,
// a tesseract adapter, and a process-wide engine pool with an explicit
// acquire/release lifecycle. The extraction pipeline is purely a consumer
// of the text produced here and never depends on this lifecycle.
package ocr

import "context"

// Progress reports advisory recognition progress; percent is 0-100.
type Progress func(status string, percent int)

// Engine recognizes the text in an image file. Implementations return the
// recognized Unicode text or an error; they never post-process it.
type Engine interface {
	Recognize(ctx context.Context, imagePath string, onProgress Progress) (string, error)
}

// EngineFunc adapts a function to the Engine interface.
type EngineFunc func(ctx context.Context, imagePath string, onProgress Progress) (string, error)

// Recognize implements Engine.
func (f EngineFunc) Recognize(ctx context.Context, imagePath string, onProgress Progress) (string, error) {
	return f(ctx, imagePath, onProgress)
}

func report(p Progress, status string, percent int) {
	if p != nil {
		p(status, percent)
	}
}
