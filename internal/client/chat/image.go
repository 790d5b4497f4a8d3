package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/creativesuite/internal/client/models"
	"github.com/dmitrijs2005/creativesuite/internal/filex"
	"github.com/google/uuid"
)

var ErrImageFailed = errors.New("Failed to generate image. Please try a different prompt.")

// ImageGenerator produces an image for a prompt, reporting false on failure.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (*models.Image, bool)
}

// ImagePanel generates images and stores them in a directory.
type ImagePanel struct {
	gen      ImageGenerator
	dir      string
	inFlight sync.Mutex
}

func NewImagePanel(gen ImageGenerator, dir string) *ImagePanel {
	return &ImagePanel{gen: gen, dir: dir}
}

// Result is a generated image together with where it was saved.
type Result struct {
	Image *models.Image
	Path  string
}

// Generate asks for an image and saves it under a fresh uuid file name.
func (p *ImagePanel) Generate(ctx context.Context, prompt string) (*Result, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}
	if !p.inFlight.TryLock() {
		return nil, ErrBusy
	}
	defer p.inFlight.Unlock()

	img, ok := p.gen.GenerateImage(ctx, prompt)
	if !ok || img == nil {
		return nil, ErrImageFailed
	}

	path, err := filex.WriteInDir(p.dir, uuid.NewString()+img.Ext(), img.Data)
	if err != nil {
		return nil, fmt.Errorf("save image: %w", err)
	}

	return &Result{Image: img, Path: path}, nil
}
