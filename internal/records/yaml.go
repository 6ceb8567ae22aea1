package records

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/CSV-to-YAML-inputs/internal/types"
)

// LoadYAML reads a YAML or JSON document holding a sequence of mappings:
//
//	- url: http://x
//	  name: X
//	- url: http://y
//
// Mapping order is kept, so key discovery follows the file. Scalars are
// taken as their literal text, null becomes "". An element that is not a
// mapping yields a row with no keys. A root that is not a sequence is a
// KindType error.
func LoadYAML(path string) ([]types.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	rows, err := ParseYAML(data)
	if err != nil {
		var classified *types.Error
		if errors.As(err, &classified) {
			classified.Path = path
		}
		return nil, err
	}
	return rows, nil
}

// ParseYAML decodes rows from a YAML or JSON document.
func ParseYAML(data []byte) ([]types.Row, error) {
	var doc yaml.Node
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	root := resolve(&doc)
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, nil
		}
		root = resolve(root.Content[0])
	}

	if root.Kind != yaml.SequenceNode {
		return nil, &types.Error{
			Kind: types.KindType,
			Op:   fmt.Sprintf("expected a sequence of records, found %s", describe(root)),
		}
	}

	rows := make([]types.Row, 0, len(root.Content))
	for i, item := range root.Content {
		row, err := nodeToRow(resolve(item))
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func nodeToRow(node *yaml.Node) (types.Row, error) {
	var row types.Row
	if node.Kind != yaml.MappingNode {
		return row, nil
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := resolve(node.Content[i])
		value := resolve(node.Content[i+1])

		if key.Kind != yaml.ScalarNode {
			return row, fmt.Errorf("line %d: keys must be scalars", key.Line)
		}
		if value.Kind != yaml.ScalarNode {
			return row, fmt.Errorf("line %d: value of %q is %s, only scalars are supported",
				value.Line, key.Value, describe(value))
		}

		text := value.Value
		if value.ShortTag() == "!!null" {
			text = ""
		}
		row.Set(key.Value, text)
	}

	return row, nil
}

// resolve follows alias nodes to their anchors.
func resolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func describe(node *yaml.Node) string {
	switch node.Kind {
	case yaml.MappingNode:
		return "a mapping"
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.ScalarNode:
		return "a scalar"
	default:
		return "an empty document"
	}
}
