package format

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Registry holds registered formats.
type Registry struct {
	formats map[string]Format
}

// DefaultRegistry is the global format registry.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a new format registry.
func NewRegistry() *Registry {
	return &Registry{
		formats: make(map[string]Format),
	}
}

// Register adds a format to the registry.
func (r *Registry) Register(f Format) {
	r.formats[f.Name()] = f
}

// Get retrieves a format by name.
func (r *Registry) Get(name string) (Format, bool) {
	f, ok := r.formats[strings.ToLower(name)]
	return f, ok
}

// GetSerializer retrieves a serializer by name.
func (r *Registry) GetSerializer(name string) (Serializer, error) {
	f, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", name)
	}
	s, ok := f.(Serializer)
	if !ok {
		return nil, fmt.Errorf("format %s does not support serialization", name)
	}
	return s, nil
}

// List returns all registered format names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Serializers returns the names of the formats that can write entries, in
// sorted order.
func (r *Registry) Serializers() []string {
	var names []string
	for _, name := range r.List() {
		if _, ok := r.formats[name].(Serializer); ok {
			names = append(names, name)
		}
	}
	return names
}

// DetectSerializer picks a serializer from the output file extension.
// Formats are checked in name order so the result is stable when two
// formats share an extension.
func (r *Registry) DetectSerializer(filename string) (Serializer, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext != "" {
		for _, name := range r.List() {
			s, ok := r.formats[name].(Serializer)
			if !ok {
				continue
			}
			for _, fext := range s.Extensions() {
				if ext == fext {
					return s, nil
				}
			}
		}
	}
	return nil, fmt.Errorf("could not detect output format for %s", filename)
}

// Register adds a format to the default registry.
func Register(f Format) {
	DefaultRegistry.Register(f)
}

// Get retrieves a format from the default registry.
func Get(name string) (Format, bool) {
	return DefaultRegistry.Get(name)
}

// GetSerializer retrieves a serializer from the default registry.
func GetSerializer(name string) (Serializer, error) {
	return DefaultRegistry.GetSerializer(name)
}

// DetectSerializer detects the output format using the default registry.
func DetectSerializer(filename string) (Serializer, error) {
	return DefaultRegistry.DetectSerializer(filename)
}
