// Package config handles converter configuration loading and management.
package config

// Config holds all converter settings.
type Config struct {
	// ModelsDir is the directory conversion jobs are resolved against.
	ModelsDir string          `yaml:"models_dir"`
	Jobs      []Job           `yaml:"jobs"`
	Converter ConverterConfig `yaml:"converter"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// Job is one (input, output) conversion pair. Relative paths are resolved
// against ModelsDir.
type Job struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// ConverterConfig holds settings for the external CAD converter used for the
// STEP import stage.
type ConverterConfig struct {
	// Command is the converter executable.
	Command string `yaml:"command"`
	// Args are passed before the input and output paths.
	Args []string `yaml:"args"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values. The default job
// list covers the drawer-slide models shipped with the web viewer; real
// deployments override it from a config file.
func Default() *Config {
	return &Config{
		ModelsDir: "public/models",
		Jobs: []Job{
			{Input: "dd-slide-assembly.step", Output: "dd-slide-assembly.glb"},
			{Input: "dd-lower-track.step", Output: "dd-lower-track.glb"},
			{Input: "dd-support-leg.step", Output: "dd-support-leg.glb"},
			{Input: "dd-manifold.step", Output: "dd-manifold.glb"},
		},
		Converter: ConverterConfig{
			Command: "assimp",
			Args:    []string{"export"},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
