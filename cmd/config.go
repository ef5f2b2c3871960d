package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"selectest.dev/pkg/selectest/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "selectest"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName              = "output"
	verboseFlagName             = "verbose"
	evergreenFileFlagName       = "evergreen-file"
	selectedTestsConfigFlagName = "selected-tests-config"
	repoRootFlagName            = "repo-root"
	buildVariantFlagName        = "build-variant"
	expansionFileFlagName       = "expansion-file"
	revisionFlagName            = "revision"
	changedFileFlagName         = "changed-file"

	evergreenFileKey       = "evergreen_file"
	selectedTestsConfigKey = "selected_tests_config"
	repoRootKey            = "repo_root"
	suitesDirKey           = "suites_dir"
	thresholdKey           = "selection.threshold"
	excludeTasksKey        = "selection.exclude_tasks"
	excludePatternsKey     = "selection.exclude_patterns"
	testFilePatternsKey    = "selection.test_file_patterns"
	testFileExcludesKey    = "selection.test_file_excludes"
	serviceRetryMaxKey     = "service.retry_max"
	serviceTimeoutKey      = "service.timeout"

	defaultOutputDir           = "selected_tests_config"
	defaultEvergreenFile       = "etc/evergreen.yml"
	defaultSelectedTestsConfig = "selected_tests_service.yml"
	defaultRepoRoot            = "."
	defaultSuitesDir           = "buildscripts/resmokeconfig/suites"
	defaultServiceRetryMax     = 3
	defaultServiceTimeout      = 60

	envPrefix = "SELECTEST"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".selectest.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	// Variables from a local .env file feed the SELECTEST_* environment keys.
	_ = godotenv.Load()

	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultOutputDir)
	viper.SetDefault(evergreenFileKey, defaultEvergreenFile)
	viper.SetDefault(selectedTestsConfigKey, defaultSelectedTestsConfig)
	viper.SetDefault(repoRootKey, defaultRepoRoot)
	viper.SetDefault(suitesDirKey, defaultSuitesDir)

	viper.SetDefault(thresholdKey, domain.DefaultRelationThreshold)
	viper.SetDefault(excludeTasksKey, []string{})
	viper.SetDefault(excludePatternsKey, []string{})
	viper.SetDefault(testFilePatternsKey, domain.DefaultTestFilePatterns)
	viper.SetDefault(testFileExcludesKey, []string{})

	viper.SetDefault(serviceRetryMaxKey, defaultServiceRetryMax)
	viper.SetDefault(serviceTimeoutKey, defaultServiceTimeout)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Numeric slog levels are accepted too (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
