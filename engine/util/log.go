package util

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var GLOBAL_LOG_LEVEL = LogLevelInfo
var GLOBAL_LOG_CATEGORIES = LogVoxel | LogPlayer | LogEditor | LogInput | LogSystem

var (
	logOutput io.Writer = os.Stderr
	logMutex  sync.Mutex
)

type LogLevel int

const (
	LogLevelError LogLevel = 1 << iota
	LogLevelWarning
	LogLevelInfo
	LogLevelDebug
)

type LogCategory int

const (
	LogVoxel LogCategory = 1 << iota
	LogPlayer
	LogEditor
	LogInput
	LogSystem
)

// SetLogOutput redirects all log lines. The terminal driver uses this to keep
// raw-mode output readable; tests use io.Discard.
func SetLogOutput(w io.Writer) {
	logMutex.Lock()
	defer logMutex.Unlock()
	logOutput = w
}

func SetLogLevel(lvl LogLevel) {
	GLOBAL_LOG_LEVEL = lvl
}


func ParseLogLevel(name string) (LogLevel, bool) {
	switch name {
	case "error":
		return LogLevelError, true
	case "warning", "warn":
		return LogLevelWarning, true
	case "info":
		return LogLevelInfo, true
	case "debug":
		return LogLevelDebug, true
	}
	return LogLevelInfo, false
}

func log(cat LogCategory, lvl LogLevel, txt string) {
	if lvl > GLOBAL_LOG_LEVEL {
		return
	}
	if GLOBAL_LOG_CATEGORIES&cat == 0 {
		return
	}
	logMutex.Lock()
	defer logMutex.Unlock()
	// raw terminals need the explicit carriage return
	fmt.Fprint(logOutput, txt, "\r\n")
}

func LogVoxelInfo(txt string) {
	log(LogVoxel, LogLevelInfo, txt)
}

func LogPlayerInfo(txt string) {
	log(LogPlayer, LogLevelInfo, txt)
}

func LogPlayerDebug(txt string) {
	log(LogPlayer, LogLevelDebug, txt)
}

func LogEditorInfo(txt string) {
	log(LogEditor, LogLevelInfo, txt)
}

func LogEditorDebug(txt string) {
	log(LogEditor, LogLevelDebug, txt)
}

func LogInputInfo(txt string) {
	log(LogInput, LogLevelInfo, txt)
}

func LogInputWarning(txt string) {
	log(LogInput, LogLevelWarning, txt)
}

func LogInputError(txt string) {
	log(LogInput, LogLevelError, txt)
}

func LogSystemInfo(txt string) {
	log(LogSystem, LogLevelInfo, txt)
}

func LogSystemError(txt string) {
	log(LogSystem, LogLevelError, txt)
}
