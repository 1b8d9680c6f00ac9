package control

import (
	"os"
	"path/filepath"
	"strings"
)

// EnvData represents the environment data.
type EnvData struct {
	BaseDirPath string
}

// EnvDataFromEnvironment determines the environment data from the process
// environment.
// The base directory is '${FLYCREATE_HOME}', or '${HOME}/.config/flycreate'
// if that is not set.
func EnvDataFromEnvironment() EnvData {
	var envData EnvData
	flycreateHome := os.Getenv("FLYCREATE_HOME")
	if flycreateHome == "" {
		envData.BaseDirPath = os.Getenv("HOME") + "/.config/flycreate"
	} else {
		envData.BaseDirPath = strings.TrimRight(flycreateHome, "/")
	}
	return envData
}

// ConfigPath returns the path of the config file.
func (e EnvData) ConfigPath() string {
	return filepath.Join(e.BaseDirPath, "config.yaml")
}

// Resolve returns the path relative to the base directory, unless it is
// absolute already.
func (e EnvData) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(e.BaseDirPath, path)
}
