package yamlwriter

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/CSV-to-YAML-inputs/internal/types"
)

// Verify parses text with a YAML reader and checks that it holds exactly the
// blocks Format would produce for rows and keys: the block names in order,
// the keys in order, and every value equal to its normalised cell.
//
// Format does not escape line breaks or YAML indicators in keys, so a cell
// with an embedded newline or a key such as "a: b" yields text a YAML reader
// sees differently. Verify reports the first such difference.
func Verify(text string, rows []types.Row, keys []string) error {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return fmt.Errorf("rendered output is not valid YAML: %w", err)
	}

	if len(rows) == 0 {
		if len(doc.Content) != 0 {
			return fmt.Errorf("expected an empty document")
		}
		return nil
	}

	if len(doc.Content) != 1 || doc.Content[0].Kind != yaml.MappingNode {
		return fmt.Errorf("rendered output is not a mapping")
	}

	root := doc.Content[0]
	if got := len(root.Content) / 2; got != len(rows) {
		return fmt.Errorf("expected %d blocks, found %d", len(rows), got)
	}

	for i, row := range rows {
		name := root.Content[2*i]
		block := root.Content[2*i+1]

		want := fmt.Sprintf("%s%d", BlockPrefix, i)
		if name.Value != want {
			return fmt.Errorf("line %d: expected block %q, found %q", name.Line, want, name.Value)
		}

		if err := verifyBlock(want, block, row, keys); err != nil {
			return err
		}
	}

	return nil
}

func verifyBlock(name string, block *yaml.Node, row types.Row, keys []string) error {
	if len(keys) == 0 {
		if block.Kind != yaml.ScalarNode || block.ShortTag() != "!!null" {
			return fmt.Errorf("%s: expected an empty block", name)
		}
		return nil
	}

	if block.Kind != yaml.MappingNode {
		return fmt.Errorf("%s: expected a mapping", name)
	}
	if got := len(block.Content) / 2; got != len(keys) {
		return fmt.Errorf("%s: expected %d keys, found %d", name, len(keys), got)
	}

	for j, key := range keys {
		keyNode := block.Content[2*j]
		valueNode := block.Content[2*j+1]

		if keyNode.Value != key {
			return fmt.Errorf("line %d: %s: expected key %q, found %q", keyNode.Line, name, key, keyNode.Value)
		}

		want := NormalizeValue(row.Value(key))
		if valueNode.Kind != yaml.ScalarNode || valueNode.Value != want {
			return fmt.Errorf("line %d: %s.%s: expected %q, found %q", valueNode.Line, name, key, want, valueNode.Value)
		}
	}

	return nil
}
