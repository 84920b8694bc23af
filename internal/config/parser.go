package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	signuperrors "github.com/alexisbeaulieu97/signup/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseFile reads a YAML settings file on top of base. Keys absent from the
// file keep their value from base.
func ParseFile(path string, base Settings) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, signuperrors.NewParseError(path, 0, err)
	}

	settings := base
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return base, signuperrors.NewParseError(path, extractLine(err), err)
	}

	return settings, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
