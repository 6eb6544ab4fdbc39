package render

import "log/slog"

// Option configures a Renderer during construction.
// Use functional options to customize Renderer behavior.
//
// Example:
//
//	// Default construction
//	r, err := render.NewRenderer(m, catalog)
//
//	// Custom texture cache size and logger
//	r, err := render.NewRenderer(m, catalog,
//		render.WithTextureCacheSize(128),
//		render.WithLogger(slog.Default()))
type Option func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer construction.
type rendererOptions struct {
	textureCacheSize int
	logger           *slog.Logger
}

// defaultTextureCacheSize bounds the composed-texture LRU cache when the
// caller does not override it with WithTextureCacheSize. 128 comfortably
// covers a level's worth of distinct wall textures without unbounded growth.
const defaultTextureCacheSize = 128

func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		textureCacheSize: defaultTextureCacheSize,
		logger:           nil, // falls back to the package-default logger
	}
}

// WithTextureCacheSize bounds the number of composed textures the renderer
// keeps cached. When the cache is full the least recently used entry is
// evicted, and an evicted texture is composed again the next time it is
// requested; a composed texture is composed only once per id while the
// number of distinct ids in use stays within this size.
func WithTextureCacheSize(n int) Option {
	return func(o *rendererOptions) {
		if n > 0 {
			o.textureCacheSize = n
		}
	}
}

// WithLogger overrides the logger used by this renderer instance, instead
// of the package-default logger configured via SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *rendererOptions) {
		o.logger = l
	}
}
