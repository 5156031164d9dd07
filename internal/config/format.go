package config

import (
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Decoder parses raw document bytes into Params
type Decoder func(data []byte, out *Params) error

// decoders maps a lower-cased file extension to its decoder
var decoders = make(map[string]Decoder)

// defaultFormat is used for unknown or missing extensions
const defaultFormat = ".yaml"

// RegisterDecoder registers a decoder for a file extension (including the dot)
func RegisterDecoder(ext string, dec Decoder) {
	decoders[strings.ToLower(ext)] = dec
}

// decoderFor selects the decoder matching path's extension
func decoderFor(path string) Decoder {
	if dec, ok := decoders[strings.ToLower(filepath.Ext(path))]; ok {
		return dec
	}
	return decoders[defaultFormat]
}

func decodeYAML(data []byte, out *Params) error {
	return yaml.Unmarshal(data, out)
}

func decodeTOML(data []byte, out *Params) error {
	return toml.Unmarshal(data, out)
}

func init() {
	RegisterDecoder(".yml", decodeYAML)
	RegisterDecoder(".yaml", decodeYAML)
	// Documents written for the first releases of discorder
	RegisterDecoder(".toml", decodeTOML)
}
