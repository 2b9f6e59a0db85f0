package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/fieldlens/internal/model"
)

// LoadContext reads a project context YAML file. An empty path returns a
// nil context, which every pipeline method tolerates.
func LoadContext(path string) (*model.ProjectContext, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read context: %w", err)
	}

	var ctx model.ProjectContext
	if err := yaml.Unmarshal(data, &ctx); err != nil {
		return nil, fmt.Errorf("parse context: %w", err)
	}
	return &ctx, nil
}
