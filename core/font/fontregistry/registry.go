package fontregistry

import (
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tinytype/core"
	"github.com/npillmayer/tinytype/core/font"
)

// Registry is an append-only list of bitmap fonts, kept in order of
// registration.
type Registry struct {
	mu    sync.RWMutex
	fonts []*font.BitmapFont
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold the bitmap fonts
// available for rendering.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a font to the global registry.
func Register(f *font.BitmapFont) {
	GlobalRegistry().Register(f)
}

// Register appends a font to the registry. Fonts are not de-duplicated.
//
// Fonts failing validation are registered nevertheless; the problems are
// reported to the trace, as lookups into such a font may silently fail.
func (fr *Registry) Register(f *font.BitmapFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	if err := f.Validate(); err != nil {
		tracer().Errorf("registering malformed font %q: %v", f.Family(), err)
	}
	fr.mu.Lock()
	defer fr.mu.Unlock()
	fr.fonts = append(fr.fonts, f)
	tracer().Debugf("registry stores font %q (#%d) at sizes %v", f.Family(),
		len(fr.fonts), f.PixelSizes())
}

// Len returns the number of registered fonts.
func (fr *Registry) Len() int {
	fr.mu.RLock()
	defer fr.mu.RUnlock()
	return len(fr.fonts)
}

// First returns the font registered first, which is the fallback for all
// unmatched requests. If the registry is empty, an error with code
// core.EMISSING is returned.
func (fr *Registry) First() (*font.BitmapFont, error) {
	fr.mu.RLock()
	defer fr.mu.RUnlock()
	if len(fr.fonts) == 0 {
		return nil, core.Error(core.EMISSING, "cannot render text without fonts")
	}
	return fr.fonts[0], nil
}

// Lookup returns the first registered font with a family name equal to
// family.
func (fr *Registry) Lookup(family string) (*font.BitmapFont, bool) {
	fr.mu.RLock()
	defer fr.mu.RUnlock()
	for _, f := range fr.fonts {
		if string(f.FamilyName) == family {
			return f, true
		}
	}
	return nil, false
}

// Fonts returns the registered fonts in order of registration.
func (fr *Registry) Fonts() []*font.BitmapFont {
	fr.mu.RLock()
	defer fr.mu.RUnlock()
	fonts := make([]*font.BitmapFont, len(fr.fonts))
	copy(fonts, fr.fonts)
	return fonts
}

// LogFontList is a helper function to dump the list of known fonts
// to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- registered fonts ---")
	for i, f := range fr.Fonts() {
		tracer().Infof("font [%d] = %s at %v", i, f.Family(), f.PixelSizes())
	}
	tracer().Infof("------------------------")
	tracer().SetTraceLevel(level)
}
