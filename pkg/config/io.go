package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Scene is a declarative description of one clip's layer stack,
// back-to-front.
type Scene struct {
	Version string  `yaml:"version,omitempty"`
	Layers  []Layer `yaml:"layers"`
}

// ReadScene reads a scene description from a YAML file.
func ReadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, err
	}

	return &scene, nil
}

// WriteScene writes a scene description to a YAML file.
func WriteScene(scene *Scene, path string) error {
	data, err := yaml.Marshal(scene)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
