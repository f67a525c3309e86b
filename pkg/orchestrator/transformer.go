package orchestrator

import (
	"context"
	"strings"

	"github.com/goliatone/go-nuxtgen/pkg/render"
)

// Transformer post-processes a rendered file.
type Transformer interface {
	Transform(ctx context.Context, file *render.File) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, file *render.File) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, file *render.File) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, file)
}

// BannerTransformer prefixes every non-empty file with a line comment.
func BannerTransformer(text string) Transformer {
	return TransformerFunc(func(_ context.Context, file *render.File) error {
		text := strings.TrimSpace(text)
		if text == "" || file.Contents == "" {
			return nil
		}
		file.Contents = "// " + text + "\n" + file.Contents
		return nil
	})
}

// TrailingNewlineTransformer guarantees every file ends with exactly one
// newline.
func TrailingNewlineTransformer() Transformer {
	return TransformerFunc(func(_ context.Context, file *render.File) error {
		file.Contents = strings.TrimRight(file.Contents, "\n") + "\n"
		return nil
	})
}
