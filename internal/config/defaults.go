package config

const (
	defaultProjectsDir    = "~/.local/share/storyreel/projects"
	defaultLogDir         = "~/.local/share/storyreel/logs"
	defaultLogFormat      = "auto"
	defaultLogLevel       = "info"
	defaultHistoryEnabled = true
)

// ProjectsDirEnv overrides paths.projects_dir when set.
const ProjectsDirEnv = "STORYREEL_HOME"

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ProjectsDir: defaultProjectsDir,
			LogDir:      defaultLogDir,
		},
		History: History{
			Enabled: defaultHistoryEnabled,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
