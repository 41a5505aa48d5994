// Package content loads and encodes content bundles. A bundle is the declarative
// game data the engine reads: races, classes, class requirements, the item
// catalog, shops and stories.
package content

import (
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-story/internal/entities/game"
	"github.com/KirkDiggler/rpg-story/internal/errors"
)

//go:embed default.yaml
var defaultBundle []byte

// Format is a bundle serialization format
type Format string

// Supported formats
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension; anything that is not
// .json is read as YAML
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// ParseFormat validates a user supplied format name
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", errors.InvalidArgumentf("unsupported content format: %s", name)
}

// Default returns a fresh copy of the built in bundle
func Default() (*game.GameData, error) {
	data, err := Parse(defaultBundle, FormatYAML)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse default bundle")
	}
	return data, nil
}

// Load reads a bundle from disk
func Load(path string) (*game.GameData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("content file not found: %s", path)
		}
		return nil, errors.Wrapf(err, "failed to read content file %s", path)
	}

	data, err := Parse(raw, FormatFromPath(path))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}
	return data, nil
}

// Parse decodes a bundle. Missing sections decode as empty maps.
func Parse(raw []byte, format Format) (*game.GameData, error) {
	var data game.GameData

	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(raw, &data)
	case FormatYAML:
		err = yaml.Unmarshal(raw, &data)
	default:
		return nil, errors.InvalidArgumentf("unsupported content format: %s", format)
	}
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode content bundle")
	}

	normalize(&data)
	return &data, nil
}

// Encode serializes a bundle
func Encode(data *game.GameData, format Format) ([]byte, error) {
	if data == nil {
		return nil, errors.InvalidArgument("content bundle is required")
	}

	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode content bundle")
		}
		return append(out, '\n'), nil
	case FormatYAML:
		out, err := yaml.Marshal(data)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode content bundle")
		}
		return out, nil
	}
	return nil, errors.InvalidArgumentf("unsupported content format: %s", format)
}

// normalize fills nil sections and keys shops by their declared id when the
// entry omits it
func normalize(data *game.GameData) {
	if data.Classes == nil {
		data.Classes = map[string]game.StatMap{}
	}
	if data.Races == nil {
		data.Races = map[string]game.StatMap{}
	}
	if data.ClassRequirements == nil {
		data.ClassRequirements = map[string]game.ClassRequirement{}
	}
	if data.Items == nil {
		data.Items = map[string]game.Item{}
	}
	if data.Shops == nil {
		data.Shops = map[string]game.Shop{}
	}
	if data.Stories == nil {
		data.Stories = map[string]game.Story{}
	}

	for id, item := range data.Items {
		if item.ID == "" {
			item.ID = id
			data.Items[id] = item
		}
	}
	for id, shop := range data.Shops {
		if shop.ID == "" {
			shop.ID = id
			data.Shops[id] = shop
		}
	}
}
