package extractors

import (
	"fmt"

	"github.com/ambareesh69/documentexplore/internal/core/domain"
	"github.com/ambareesh69/documentexplore/internal/core/ports/driven"
)

// Registry maps MIME types to extractors. When multiple extractors claim
// a MIME type, the highest priority wins.
type Registry struct {
	byMIME map[string]driven.Extractor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byMIME: make(map[string]driven.Extractor)}
}

// Register adds an extractor for each of its supported MIME types.
func (r *Registry) Register(e driven.Extractor) {
	for _, mime := range e.SupportedMIMETypes() {
		existing, ok := r.byMIME[mime]
		if ok && existing.Priority() >= e.Priority() {
			continue
		}
		r.byMIME[mime] = e
	}
}

// ForMIME returns the extractor for the given MIME type.
func (r *Registry) ForMIME(mime string) (driven.Extractor, error) {
	e, ok := r.byMIME[mime]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, mime)
	}
	return e, nil
}

// Has returns true if the MIME type has a registered extractor.
func (r *Registry) Has(mime string) bool {
	_, ok := r.byMIME[mime]
	return ok
}
