package cli

import (
	"bytes"
	_ "embed"
)

// defaultConfigurationDocument mirrors the programmatic defaults of the findup command and the
// logging section so a user can copy it as a starting config.yaml.
//
//go:embed default_config.yaml
var defaultConfigurationDocument []byte

// EmbeddedDefaultConfiguration returns a private copy of the default configuration document and
// the Viper type it is parsed as.
func EmbeddedDefaultConfiguration() ([]byte, string) {
	return bytes.Clone(defaultConfigurationDocument), configurationTypeConstant
}
