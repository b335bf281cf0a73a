package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	motiferrors "github.com/motifui/motif/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a sheet file from disk, validates it, and returns the model.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, motiferrors.NewParseError(path, 0, err)
	}

	sheet, err := Parse(data)
	if err != nil {
		if pe, ok := err.(*motiferrors.ParseError); ok {
			pe.Path = path
		}
		return nil, err
	}

	return sheet, nil
}

// Parse decodes and validates an in-memory sheet document.
func Parse(data []byte) (*Sheet, error) {
	var sheet Sheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, motiferrors.NewParseError("", extractLine(err), err)
	}

	if err := ValidateSheet(&sheet); err != nil {
		return nil, err
	}

	return &sheet, nil
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
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
