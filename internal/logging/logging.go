// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// These are the environmental variables that determine if we log, and if
// we log whether or not the log should go to a file.
const (
	// envLog is the environment variable that users can set to control
	// the verbosity of internal logging. It is off by default: ordinary
	// feedback for users flows through diagnostics, not the log.
	envLog = "TFMOVED_LOG"

	// envLogFile redirects the log to a file instead of stderr.
	envLogFile = "TFMOVED_LOG_PATH"
)

// ValidLevels are the log level names accepted in the envLog variable.
var ValidLevels = []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "OFF"}

// globalLogger is the hclog.Logger that sits behind the standard library
// log package, which is what most of the codebase writes to using the
// conventional "[LEVEL] ..." message prefixes.
var globalLogger hclog.Logger

// SetupLogging configures the logging subsystem from the environment and
// routes the standard library's log output through it. It must be called
// once, early in startup, before anything writes a log line.
func SetupLogging() {
	globalLogger = newHCLogger("tfmoved")

	// Now that we have the configured logger, the stdlib log package is
	// pointed at it so that log.Printf("[WARN] ...") call sites inherit
	// the level filtering and formatting for free.
	log.SetFlags(0)
	log.SetPrefix("")
	log.SetOutput(globalLogger.StandardWriter(&hclog.StandardLoggerOptions{
		InferLevels: true,
	}))
}

// HCLogger returns the global logger, for the rare callers that want
// structured arguments rather than the stdlib log bridge.
func HCLogger() hclog.Logger {
	if globalLogger == nil {
		// Logging wasn't set up; this is primarily hit by tests, which
		// are entitled to a working (if quiet) logger anyway.
		SetupLogging()
	}
	return globalLogger
}

func newHCLogger(name string) hclog.Logger {
	logOutput := io.Writer(os.Stderr)

	if logPath := os.Getenv(envLogFile); logPath != "" {
		f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		} else {
			logOutput = f
		}
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Level:  globalLogLevel(),
		Output: logOutput,
	})
}

func globalLogLevel() hclog.Level {
	envLevel := strings.ToUpper(os.Getenv(envLog))
	if envLevel == "" || envLevel == "OFF" {
		return hclog.Off
	}

	if isValidLogLevel(envLevel) {
		return hclog.LevelFromString(envLevel)
	}

	fmt.Fprintf(os.Stderr, "[WARN] Invalid log level %q. Defaulting to TRACE. Use %s=%s to suppress this message.\n",
		envLevel, envLog, strings.Join(ValidLevels, "|"))
	return hclog.Trace
}

func isValidLogLevel(level string) bool {
	for _, valid := range ValidLevels {
		if level == valid {
			return true
		}
	}
	return false
}
