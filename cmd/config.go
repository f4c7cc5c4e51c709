package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	m "mutagene.dev/pkg/mutagene/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "mutagene"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	generationsFlagName = "generations"
	rateFlagName        = "rate"
	environmentFlagName = "environment"
	mutationFlagName    = "mutation"
	seedFlagName        = "seed"
	policyFlagName      = "policy"
	lineagesFlagName    = "lineages"
	parallelFlagName    = "parallel"
	exportFlagName      = "export"
	chartFlagName       = "chart"
	tuiFlagName         = "tui"
	verboseFlagName     = "verbose"
	logFileFlagName     = "log-file"

	generationsConfigKey = "simulate.generations"
	rateConfigKey        = "simulate.rate"
	environmentConfigKey = "simulate.environment"
	mutationConfigKey    = "simulate.mutation"
	seedConfigKey        = "simulate.seed"
	policyConfigKey      = "simulate.policy"
	lineagesConfigKey    = "simulate.lineages"
	parallelConfigKey    = "simulate.parallel"

	defaultSequence    = "ATGGCCATTGTAATGGGCCGCTGAAAGGGTGCCCGATAG"
	defaultGenerations = 10
	defaultRate        = 0.01
	defaultEnvironment = string(m.EnvironmentNormal)
	defaultMutation    = string(m.MutationSubstitution)
	defaultSeed        = uint64(0)
	defaultPolicy      = string(m.PolicyEscalating)
	defaultLineages    = 1
	defaultParallel    = 1

	envPrefix = "MUTAGENE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".mutagene.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(generationsConfigKey, defaultGenerations)
	viper.SetDefault(rateConfigKey, defaultRate)
	viper.SetDefault(environmentConfigKey, defaultEnvironment)
	viper.SetDefault(mutationConfigKey, defaultMutation)
	viper.SetDefault(seedConfigKey, defaultSeed)
	viper.SetDefault(policyConfigKey, defaultPolicy)
	viper.SetDefault(lineagesConfigKey, defaultLineages)
	viper.SetDefault(parallelConfigKey, defaultParallel)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := readConfig(viper.GetViper()); err != nil {
		slog.Warn("Ignoring unreadable config file", "path", viper.ConfigFileUsed(), "error", err)
	}
}

// readConfig loads the config file into v. A missing file is not an error.
func readConfig(v *viper.Viper) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
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

	// Allow numeric slog levels as well (e.g. -4 for debug).
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
