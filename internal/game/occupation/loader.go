package occupation

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type occupationFile struct {
	Occupations []*Occupation `yaml:"occupations"`
}

type skillFile struct {
	Skills []Skill `yaml:"skills"`
}

// yamlFiles returns the *.yaml and *.yml files in dir in directory order.
func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %q: %w", dir, err)
	}
	var paths []string
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

// LoadOccupations reads every YAML file in dir, each holding an "occupations"
// list, and returns them in file then list order.
//
// Precondition: dir is a readable directory path.
// Postcondition: every returned Occupation passed Validate.
func LoadOccupations(dir string) ([]*Occupation, error) {
	paths, err := yamlFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadOccupations: %w", err)
	}
	var out []*Occupation
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadOccupations: cannot read file %q: %w", path, err)
		}
		var f occupationFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("LoadOccupations: cannot parse file %q: %w", path, err)
		}
		for _, o := range f.Occupations {
			if err := o.Validate(); err != nil {
				return nil, fmt.Errorf("LoadOccupations: invalid occupation in %q: %w", path, err)
			}
			out = append(out, o)
		}
	}
	return out, nil
}

// LoadSkills reads every YAML file in dir, each holding a "skills" list.
//
// Precondition: dir is a readable directory path.
// Postcondition: every returned Skill passed Validate.
func LoadSkills(dir string) ([]Skill, error) {
	paths, err := yamlFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadSkills: %w", err)
	}
	var out []Skill
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadSkills: cannot read file %q: %w", path, err)
		}
		var f skillFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("LoadSkills: cannot parse file %q: %w", path, err)
		}
		for _, s := range f.Skills {
			if err := s.Validate(); err != nil {
				return nil, fmt.Errorf("LoadSkills: invalid skill in %q: %w", path, err)
			}
			out = append(out, s)
		}
	}
	return out, nil
}
