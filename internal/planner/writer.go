package planner

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WritePlan writes a flight plan to a YAML file.
func WritePlan(plan *Plan, path string) error {
	data, err := yaml.Marshal(plan)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadPlan reads a flight plan from a YAML file.
func ReadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, err
	}
	if plan.Width <= 0 || plan.Height <= 0 {
		return nil, fmt.Errorf("plan %s: invalid dimensions %dx%d", path, plan.Width, plan.Height)
	}
	return &plan, nil
}
