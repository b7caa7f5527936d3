// Package attrs reads LoopView attribute sets from YAML and XML files.
//
// A YAML file is a flat mapping of attribute name to scalar:
//
//	showInnerCircle: true
//	innerRadius: 24dp
//	topColor: "#FF2196F3"
//	angle: 135
//
// An XML file is a single element whose attributes are the attribute set,
// as written in a layout. Namespace prefixes are dropped:
//
//	<LoopView app:innerRadius="24dp" app:angle="135"/>
//
// Values are kept as written; interpretation (units, colors, references) is
// left to loopview.NewWithAttributes.
package attrs

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cndemo/loopview"
)

var (
	// ErrUnknownFormat is returned by Load for an unsupported file extension.
	ErrUnknownFormat = errors.New("attrs: unknown file format")

	// ErrNotFlat is returned when a YAML value is not a scalar.
	ErrNotFlat = errors.New("attrs: attribute values must be scalars")
)

// ParseYAML reads a flat YAML mapping. An empty document yields an empty set.
func ParseYAML(r io.Reader) (loopview.Attributes, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return loopview.Attributes{}, nil
		}
		return nil, fmt.Errorf("attrs: parse yaml: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return loopview.Attributes{}, nil
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("attrs: parse yaml: line %d: expected a mapping", root.Line)
	}

	out := make(loopview.Attributes, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: %q at line %d", ErrNotFlat, key.Value, val.Line)
		}
		// Scalars keep their source text, so 0xFF00FF00 stays hex.
		out[key.Value] = val.Value
	}
	return out, nil
}

// ParseXML reads the attributes of the first element in r.
func ParseXML(r io.Reader) (loopview.Attributes, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errors.New("attrs: parse xml: no element")
			}
			return nil, fmt.Errorf("attrs: parse xml: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		out := make(loopview.Attributes, len(start.Attr))
		for _, a := range start.Attr {
			if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
				continue
			}
			out[a.Name.Local] = a.Value
		}
		return out, nil
	}
}

// Load reads the attribute file at path, choosing the parser by extension:
// .yaml and .yml for YAML, .xml for XML.
func Load(path string) (loopview.Attributes, error) {
	var parse func(io.Reader) (loopview.Attributes, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parse = ParseYAML
	case ".xml":
		parse = ParseXML
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("attrs: %w", err)
	}
	defer f.Close()

	a, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	loopview.Logger().Debug("attrs: loaded", "path", path, "count", len(a))
	return a, nil
}
