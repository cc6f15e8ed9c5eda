package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/StounhandJ/video_download/internal/transfer"
	"github.com/StounhandJ/video_download/internal/utils"
	"github.com/goccy/go-yaml"
)

const (
	EnvConfigPath = "VIDEO_DOWNLOAD_CONFIG"

	appDir         = ".config/video-download"
	configFileName = "config.yaml"
)

type Duration time.Duration

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default встроенные значения, поверх них ложатся yaml, env и флаги
func Default() Config {
	return Config{
		Application: Application{
			LogLevel:   "warning",
			OutputDir:  "~/Downloads",
			CookieDir:  "~/" + appDir,
			ScratchDir: os.TempDir(),
			FFmpegPath: "ffmpeg",
			UserAgent:  transfer.DefaultUserAgent,
		},
		Browser: Browser{
			CaptureWait:       Duration(10 * time.Second),
			ExtraWait:         Duration(5 * time.Second),
			RenderWait:        Duration(5 * time.Second),
			NavigationTimeout: Duration(30 * time.Second),
			LoginTimeout:      Duration(5 * time.Minute),
		},
	}
}

// Path путь к yaml конфигу: $VIDEO_DOWNLOAD_CONFIG или ~/.config/video-download/config.yaml
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return ExpandPath(p)
	}

	return ExpandPath(filepath.Join("~", appDir, configFileName))
}

// Load читает конфиг поверх Default. Отсутствие файла не ошибка.
func Load(path string) (Config, error) {
	cfg := Default()

	if err := readFile(&cfg, path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			utils.Log.Debugf("Конфиг %s не найден, используются значения по умолчанию", path)

			return cfg, nil
		}

		return cfg, err
	}

	return cfg, nil
}

func readFile(cfg any, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil {
			utils.Log.Error(cerr)
		}
	}()

	decoder := yaml.NewDecoder(f)

	if err = decoder.Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode yaml file %s: %w", path, err)
	}

	return nil
}

// ExpandPath раскрывает ведущую ~ в домашний каталог
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		utils.Log.Warnf("Не удалось определить домашний каталог: %s", err)

		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// UnmarshalYAML реализует InterfaceUnmarshaler (UnmarshalYAML(func(interface{}) error) error).
// Поддерживает:
// - строку parseable через time.ParseDuration, например "5m", "1h30m"
// - число (интерпретируем как секунды, в том числе с дробной частью)
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	// go-yaml приводит числа к строке, поэтому всё разбирается отсюда
	var s string
	if err := unmarshal(&s); err != nil {
		return fmt.Errorf("unsupported duration format: %w", err)
	}

	if dur, err := time.ParseDuration(s); err == nil {
		*d = Duration(dur)

		return nil
	}

	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("unsupported duration format %q", s)
	}

	*d = Duration(time.Duration(sec * float64(time.Second)))

	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
