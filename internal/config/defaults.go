package config

const (
	defaultEngineProgram = "ffmpeg"
	defaultEngineHWAccel = "auto"
	defaultLibraryPath   = "~/.local/share/montage/library.db"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Engine: Engine{
			Program: defaultEngineProgram,
			HWAccel: defaultEngineHWAccel,
		},
		Library: Library{
			Path: defaultLibraryPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
