package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lixenwraith/singularity/constants"
	"github.com/pkg/errors"
)

// setupLogging routes the package logger into dir when debug is set, and discards it otherwise.
// The terminal is owned by the game so logs never go to stdout or stderr
func setupLogging(dir string, debug bool) (*os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil, errors.Wrap(err, "create log directory")
	}

	logPath := filepath.Join(dir, constants.LogFileName)
	if err := rotateLog(logPath); err != nil {
		log.SetOutput(io.Discard)
		return nil, err
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil, errors.Wrap(err, "open log file")
	}

	log.SetOutput(f)
	log.SetLevel(log.DebugLevel)
	log.SetReportTimestamp(true)
	log.SetFormatter(log.LogfmtFormatter)
	return f, nil
}

// rotateLog moves an oversized log aside with a timestamp suffix
func rotateLog(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= constants.MaxLogSize {
		return nil
	}
	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s-%s%s", path[:len(path)-len(ext)], time.Now().Format("20060102-150405"), ext)
	return errors.Wrap(os.Rename(path, rotated), "rotate log")
}
