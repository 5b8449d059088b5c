package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

// AnswersFile is the per-project file recording the options a project was
// generated with.
const AnswersFile = ".vjsplugin.yaml"

type answersDoc struct {
	GeneratorVersion string  `yaml:"generatorVersion,omitempty"`
	Options          Options `yaml:",inline"`
}

// AnswersPath returns the answers file location inside dir.
func AnswersPath(dir string) string {
	return filepath.Join(dir, AnswersFile)
}

// LoadAnswers reads the answers file in dir into a fresh Viper instance so
// callers can distinguish unset keys from false/empty values. A missing
// file yields (nil, nil).
func LoadAnswers(dir string) (*viper.Viper, error) {
	path := AnswersPath(dir)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading answers %s: %w", path, err)
	}
	return v, nil
}

// SaveAnswers writes ctx's options to the answers file in dir.
func SaveAnswers(dir string, ctx *Context) error {
	doc := answersDoc{
		GeneratorVersion: ctx.GeneratorVersion,
		Options:          ctx.Options,
	}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("marshaling answers: %w", err)
	}

	path := AnswersPath(dir)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing answers %s: %w", path, err)
	}
	return nil
}
