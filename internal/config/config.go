package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// FileName is the settings file kept at the project root. It is a plain
// shell-sourceable list of KEY=VALUE lines so it stays readable and
// hand-editable.
const FileName = ".dockrsync"

var ErrSettingsMissing = errors.New("no settings found, run 'dockrsync setup' first")

// Settings is loaded once per invocation and never mutated afterwards. The
// only writer is the setup command, which runs on its own.
//
// DefaultService takes precedence over DefaultContainer: the latter is a
// legacy key naming a service directly and is only consulted when
// DEFAULT_SERVICE is unset.
type Settings struct {
	DefaultService   string
	DefaultContainer string
	AnyBarPort       int
	DeleteFlag       bool
	RemoteRoot       string
	StatusPort       int
	DBPath           string
}

var Default = Settings{
	RemoteRoot: "/app",
	DBPath:     ".dockrsync.db",
}

func Exists() bool {
	_, err := os.Stat(FileName)
	return err == nil
}

func Load() (*Settings, error) {
	if !Exists() {
		return nil, ErrSettingsMissing
	}

	v := viper.New()
	v.SetConfigFile(FileName)
	v.SetConfigType("env")

	v.SetDefault("REMOTE_ROOT", Default.RemoteRoot)
	v.SetDefault("DB_PATH", Default.DBPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	// Every value in an env-style file is a string, so go through the
	// typed getters rather than Unmarshal.
	s := Settings{
		DefaultService:   v.GetString("DEFAULT_SERVICE"),
		DefaultContainer: v.GetString("DEFAULT_CONTAINER"),
		AnyBarPort:       v.GetInt("ANYBAR_PORT"),
		DeleteFlag:       v.GetBool("DELETE_FLAG"),
		RemoteRoot:       v.GetString("REMOTE_ROOT"),
		StatusPort:       v.GetInt("STATUS_PORT"),
		DBPath:           v.GetString("DB_PATH"),
	}

	return &s, nil
}

// Save writes the settings as assignment lines. Optional keys that still
// hold their defaults are written anyway so the file documents itself.
func Save(s *Settings) error {
	content := fmt.Sprintf(
		"DEFAULT_SERVICE=%s\nANYBAR_PORT=%d\nDELETE_FLAG=%t\nREMOTE_ROOT=%s\nSTATUS_PORT=%d\n",
		s.DefaultService, s.AnyBarPort, s.DeleteFlag, s.RemoteRoot, s.StatusPort)

	if err := os.WriteFile(FileName, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
