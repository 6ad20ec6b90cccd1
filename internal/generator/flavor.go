package generator

import (
	"sort"
	"sync"
)

// Format names an output flavor, e.g. "hope" or "hugo".
type Format string

// File is one generated artifact, Path relative to the output directory.
type File struct {
	Path string
	Data []byte
}

// Flavor serializes a resolved document for one static site generator.
// Built-in flavors live in subpackages and register from init.
type Flavor interface {
	Name() Format
	Files(doc *Document) ([]File, error)
}

var (
	flavorMu sync.RWMutex
	flavors  = map[Format]Flavor{}
)

// Register adds a flavor. Duplicate names are ignored.
func Register(f Flavor) {
	if f == nil {
		return
	}
	flavorMu.Lock()
	defer flavorMu.Unlock()
	if _, exists := flavors[f.Name()]; exists {
		return
	}
	flavors[f.Name()] = f
}

// Get returns the flavor registered under name, or nil.
func Get(name Format) Flavor {
	flavorMu.RLock()
	defer flavorMu.RUnlock()
	return flavors[name]
}

// Formats lists registered flavor names in sorted order.
func Formats() []Format {
	flavorMu.RLock()
	defer flavorMu.RUnlock()
	out := make([]Format, 0, len(flavors))
	for name := range flavors {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
