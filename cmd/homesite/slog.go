package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
)

var once sync.Once

func init() {
	once.Do(func() {
		modulePrefix := getModulePrefix()

		logLevel := slog.LevelInfo
		if logLevelStr := os.Getenv("LOG_LEVEL"); logLevelStr != "" {
			if err := logLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
				panic(fmt.Sprintf("invalid log level: %s", logLevelStr))
			}
		}

		if logLevel == slog.LevelDebug {
			replacer := func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.SourceKey {
					if source, ok := a.Value.Any().(*slog.Source); ok {
						source.File = cleanSourcePath(source.File, modulePrefix)
					}
				}
				if err, ok := a.Value.Any().(error); ok {
					aErr := tint.Err(err)
					aErr.Key = a.Key
					return aErr
				}
				return a
			}

			slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
				Level:       slog.LevelDebug,
				TimeFormat:  time.TimeOnly,
				ReplaceAttr: replacer,
				AddSource:   true,
			})))
			return
		}

		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
	})
}

// getModulePrefix returns "/<last module path element>/" for trimming
// source paths in debug output.
func getModulePrefix() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Path == "" {
		if wd, err := os.Getwd(); err == nil {
			return "/" + filepath.Base(wd) + "/"
		}
		return "/homesite/"
	}
	parts := strings.Split(info.Main.Path, "/")
	return "/" + parts[len(parts)-1] + "/"
}

func cleanSourcePath(filePath, modulePrefix string) string {
	if _, rest, ok := strings.Cut(filePath, modulePrefix); ok {
		return rest
	}
	if idx := strings.LastIndex(filePath, "/src/"); idx != -1 {
		return filePath[idx+5:]
	}
	return filePath
}
