/*
   Copyright 2021 Joseph Cumines

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command btdemo is a small host program exercising this module's Runner
// against a sample patrol-and-chase behavior, configured from a YAML file.
package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config holds everything the demo's tree and Runner need, loaded from
// YAML rather than hardcoded so the scenario (timings, the alert key) can
// be tuned without a rebuild.
type config struct {
	TickRateSeconds      float64 `yaml:"tick_rate_seconds"`
	PatrolLegSeconds     float64 `yaml:"patrol_leg_seconds"`
	ChaseReactionSeconds float64 `yaml:"chase_reaction_seconds"`
	ChaseDurationSeconds float64 `yaml:"chase_duration_seconds"`
	AlertKey             int     `yaml:"alert_key"`
	AlertAfterSeconds    float64 `yaml:"alert_after_seconds"`
	RunSeconds           float64 `yaml:"run_seconds"`
}

// defaultConfig is used when no config file is given.
func defaultConfig() config {
	return config{
		TickRateSeconds:      0.05,
		PatrolLegSeconds:     0.4,
		ChaseReactionSeconds: 0.2,
		ChaseDurationSeconds: 1.0,
		AlertKey:             1,
		AlertAfterSeconds:    1.5,
		RunSeconds:           10,
	}
}

func loadConfig(path string) (config, error) {
	if path == "" {
		return defaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return config{}, fmt.Errorf("btdemo: reading config: %w", err)
	}
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return config{}, fmt.Errorf("btdemo: parsing config: %w", err)
	}
	return cfg, cfg.validate()
}

func (cfg config) validate() error {
	if cfg.TickRateSeconds <= 0 {
		return fmt.Errorf("btdemo: tick_rate_seconds must be positive, got %v", cfg.TickRateSeconds)
	}
	if cfg.PatrolLegSeconds <= 0 {
		return fmt.Errorf("btdemo: patrol_leg_seconds must be positive, got %v", cfg.PatrolLegSeconds)
	}
	if cfg.ChaseDurationSeconds <= 0 {
		return fmt.Errorf("btdemo: chase_duration_seconds must be positive, got %v", cfg.ChaseDurationSeconds)
	}
	if cfg.RunSeconds <= 0 {
		return fmt.Errorf("btdemo: run_seconds must be positive, got %v", cfg.RunSeconds)
	}
	return nil
}
