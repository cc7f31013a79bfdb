/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	gojsonschema "github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"gocanvas/internal/editor"
	applog "gocanvas/internal/log"
	"gocanvas/internal/scene"
	"gocanvas/internal/vector"
)

// AppConfig is the user-editable configuration persisted to a YAML file in the user scope.
// Environment variables are treated as read-only overrides at runtime.
//
// config_version: bump when the structure changes in a backward-incompatible way.
// Unknown fields are ignored on unmarshal.

type GeneralConfig struct {
	// Debug turns scene invariant violations into panics.
	Debug bool   `yaml:"debug"`
	Theme string `yaml:"theme"` // "system" | "light" | "dark"
}

type EditorConfig struct {
	ObjectMargin    float32 `yaml:"object_margin"`
	SelectionMargin float32 `yaml:"selection_margin"`
	// HandleSize is the full edge length of a resize handle square.
	HandleSize float32 `yaml:"handle_size"`
	LineColor  string  `yaml:"line_color"`
	FillColor  string  `yaml:"fill_color"`
	// StrokeWidth is nil when unset; 0 draws no outline.
	StrokeWidth *float32 `yaml:"stroke_width,omitempty"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type AppConfig struct {
	ConfigVersion int               `yaml:"config_version"`
	General       GeneralConfig     `yaml:"general"`
	Editor        EditorConfig      `yaml:"editor"`
	Keys          map[string]string `yaml:"keys,omitempty"`
	Logging       LoggingConfig     `yaml:"logging"`
	Window        WindowConfig      `yaml:"window"`
}

//go:embed schema.json
var schemaJSON []byte

// Defaults returns the application defaults.
func Defaults() AppConfig {
	m := scene.DefaultMetrics
	st := vector.DefaultStyle
	return AppConfig{
		ConfigVersion: 1,
		General:       GeneralConfig{Debug: false, Theme: "system"},
		Editor: EditorConfig{
			ObjectMargin:    m.ObjectMargin,
			SelectionMargin: m.SelectionMargin,
			HandleSize:      m.HandleHalf * 2,
			LineColor:       st.Line.Hex(),
			FillColor:       st.Fill.Hex(),
			StrokeWidth:     &st.StrokeWidth,
		},
		Logging: LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
		Window:  WindowConfig{Width: 1280, Height: 760},
	}
}

// Env var names used as overrides.
const (
	EnvConfigFile = "GCV_CONFIG"
	EnvDebug      = "GCV_DEBUG"
	EnvTheme      = "GCV_THEME"
	// EnvLogLevel Logging envs
	EnvLogLevel  = "GCV_LOG_LEVEL"
	EnvLogFormat = "GCV_LOG_FORMAT"
	EnvLogSource = "GCV_LOG_SOURCE"
	EnvLogFile   = "GCV_LOG_FILE"
)

// ConfigPath returns the per-user config file path. GCV_CONFIG takes precedence.
func ConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigFile)); p != "" {
		return p, nil
	}
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" { // fallback
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "GoCanvas")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "GoCanvas")
	default: // linux and others
		base = filepath.Join(os.Getenv("HOME"), ".config", "gocanvas")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults, and merges environment overrides.
func Load() (AppConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		return Defaults(), err
	}
	return LoadFrom(path)
}

// LoadFrom is Load for an explicit path. A missing file yields the defaults;
// a file that fails to parse or to validate is reported and ignored.
func LoadFrom(path string) (AppConfig, error) {
	cfg := Defaults()
	var loadErr error
	if data, err := os.ReadFile(path); err == nil {
		if err := Validate(data); err != nil {
			loadErr = fmt.Errorf("config %s: %w", path, err)
		} else {
			var fileCfg AppConfig
			if err := yaml.Unmarshal(data, &fileCfg); err != nil {
				loadErr = fmt.Errorf("config %s: %w", path, err)
			} else {
				mergeInto(&cfg, &fileCfg)
			}
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		loadErr = fmt.Errorf("read config: %w", err)
	}
	applyEnvOverrides(&cfg)
	return cfg, loadErr
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTo(path, cfg)
}

func SaveTo(path string, cfg AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Validate checks a YAML document against the embedded JSON schema.
func Validate(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc == nil {
		return nil
	}
	res, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schemaJSON), gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	if res.Valid() {
		return nil
	}
	var errs []error
	for _, e := range res.Errors() {
		errs = append(errs, errors.New(e.String()))
	}
	return errors.Join(errs...)
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if src.General.Theme != "" {
		dst.General.Theme = src.General.Theme
	}
	// booleans: copy directly from src (file) so user preferences persist
	dst.General.Debug = src.General.Debug
	// editor
	if src.Editor.ObjectMargin > 0 {
		dst.Editor.ObjectMargin = src.Editor.ObjectMargin
	}
	if src.Editor.SelectionMargin > 0 {
		dst.Editor.SelectionMargin = src.Editor.SelectionMargin
	}
	if src.Editor.HandleSize > 0 {
		dst.Editor.HandleSize = src.Editor.HandleSize
	}
	if strings.TrimSpace(src.Editor.LineColor) != "" {
		dst.Editor.LineColor = strings.TrimSpace(src.Editor.LineColor)
	}
	if strings.TrimSpace(src.Editor.FillColor) != "" {
		dst.Editor.FillColor = strings.TrimSpace(src.Editor.FillColor)
	}
	if src.Editor.StrokeWidth != nil {
		w := *src.Editor.StrokeWidth
		dst.Editor.StrokeWidth = &w
	}
	if len(src.Keys) > 0 {
		dst.Keys = make(map[string]string, len(src.Keys))
		for k, v := range src.Keys {
			dst.Keys[k] = v
		}
	}
	// logging
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
	if src.Window.Width > 0 {
		dst.Window.Width = src.Window.Width
	}
	if src.Window.Height > 0 {
		dst.Window.Height = src.Window.Height
	}
}

func truthy(v string) bool {
	lv := strings.ToLower(v)
	return lv == "1" || lv == "true" || lv == "on" || lv == "yes"
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvDebug)); v != "" {
		cfg.General.Debug = truthy(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		cfg.General.Theme = strings.ToLower(v)
	}
	// logging overrides
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		cfg.Logging.Source = truthy(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	var env string
	switch key {
	case "general.debug":
		env = EnvDebug
	case "general.theme":
		env = EnvTheme
	case "logging.level":
		env = EnvLogLevel
	case "logging.format":
		env = EnvLogFormat
	case "logging.source":
		env = EnvLogSource
	case "logging.file":
		env = EnvLogFile
	default:
		return "", false
	}
	if os.Getenv(env) != "" {
		return env, true
	}
	return "", false
}

// EditorConfig converts the editor section into session settings.
// Invalid colours fall back to the defaults and are reported.
func (c AppConfig) EditorConfig() (editor.Config, error) {
	ec := editor.DefaultConfig()
	ec.Strict = c.General.Debug
	if c.Editor.ObjectMargin > 0 {
		ec.Metrics.ObjectMargin = c.Editor.ObjectMargin
	}
	if c.Editor.SelectionMargin > 0 {
		ec.Metrics.SelectionMargin = c.Editor.SelectionMargin
	}
	if c.Editor.HandleSize > 0 {
		ec.Metrics.HandleHalf = c.Editor.HandleSize / 2
	}
	if sw := c.Editor.StrokeWidth; sw != nil && *sw >= 0 {
		ec.Style.StrokeWidth = *sw
	}
	var errs []error
	if s := strings.TrimSpace(c.Editor.LineColor); s != "" {
		if col, err := vector.ParseHex(s); err != nil {
			errs = append(errs, fmt.Errorf("editor.line_color: %w", err))
		} else {
			ec.Style.Line = col
		}
	}
	if s := strings.TrimSpace(c.Editor.FillColor); s != "" {
		if col, err := vector.ParseHex(s); err != nil {
			errs = append(errs, fmt.Errorf("editor.fill_color: %w", err))
		} else {
			ec.Style.Fill = col
		}
	}
	return ec, errors.Join(errs...)
}

// LogOptions maps the logging section onto logger options.
func (c AppConfig) LogOptions() applog.Options {
	return applog.Options{
		Level:     c.Logging.Level,
		Format:    c.Logging.Format,
		AddSource: c.Logging.Source,
		File:      c.Logging.File,
	}
}

// WindowSize returns the window dimensions, never smaller than the schema minimum.
func (c AppConfig) WindowSize() (int, int) {
	w, h := c.Window.Width, c.Window.Height
	if w < 200 {
		w = Defaults().Window.Width
	}
	if h < 200 {
		h = Defaults().Window.Height
	}
	return w, h
}
