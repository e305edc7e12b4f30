package config

const (
	defaultInputFile       = "CS210_Project_Three_Input_File.txt"
	defaultBackupFile      = "frequency.dat"
	defaultStateDir        = "~/.local/share/grocer"
	defaultLogDirName      = "logs"
	defaultHistoryFileName = "history.db"
	defaultLockFileName    = "backup.lock"
	defaultHistogramSymbol = "*"
	defaultHistoryLimit    = 20
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults. Paths left
// empty here are derived from state_dir during normalization.
func Default() Config {
	return Config{
		Paths: Paths{
			InputFile:  defaultInputFile,
			BackupFile: defaultBackupFile,
			StateDir:   defaultStateDir,
		},
		Histogram: Histogram{
			Symbol: defaultHistogramSymbol,
		},
		History: History{
			Enabled: true,
			Limit:   defaultHistoryLimit,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
