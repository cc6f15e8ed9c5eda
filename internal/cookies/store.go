package cookies

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/StounhandJ/video_download/internal/platform"
	"github.com/StounhandJ/video_download/internal/utils"
	easyjson "github.com/mailru/easyjson"
)

const fileSuffix = "_cookies.json"

// Store хранит cookie каждой площадки в отдельном файле <dir>/<platform>_cookies.json.
// Одновременная запись одной площадки не поддерживается.
type Store struct {
	dir string
	now func() time.Time
}

func NewStore(dir string) *Store {
	return &Store{dir: dir, now: time.Now}
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) Path(p platform.ID) string {
	return filepath.Join(s.dir, string(p)+fileSuffix)
}

// Load возвращает сохранённые cookie или nil, если файла нет, он не читается или сессия истекла
func (s *Store) Load(p platform.Platform) []Cookie {
	jar, err := s.read(p.ID)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			utils.Log.Warnf("Не удалось прочитать cookie %s: %s", p.ID, err)
		}

		return nil
	}

	if Expired(p, jar, s.now()) {
		utils.Log.Debugf("Cookie %s истекли", p.ID)

		return nil
	}

	return jar
}

// Save перезаписывает файл площадки целиком через временный файл и rename
func (s *Store) Save(p platform.ID, cs []Cookie) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("failed to create cookie dir %s: %w", s.dir, err)
	}

	data, err := easyjson.Marshal(Jar(cs))
	if err != nil {
		return fmt.Errorf("failed to encode cookies: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+string(p)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	defer func() {
		if err := os.Remove(tmp.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
			utils.Log.Error(err)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("failed to write cookies: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to write cookies: %w", err)
	}

	if err = os.Rename(tmp.Name(), s.Path(p)); err != nil {
		return fmt.Errorf("failed to save cookies: %w", err)
	}

	return nil
}

// NeedsLogin true только для площадок с обязательной авторизацией и без валидной сессии
func (s *Store) NeedsLogin(p platform.Platform) bool {
	if !p.LoginRequired {
		return false
	}

	return s.Load(p) == nil
}

func (s *Store) read(p platform.ID) (Jar, error) {
	data, err := os.ReadFile(s.Path(p))
	if err != nil {
		return nil, err
	}

	var jar Jar
	if err = easyjson.Unmarshal(data, &jar); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.Path(p), err)
	}

	return jar, nil
}

// Expired решает по первой найденной ключевой cookie.
// Отрицательный или нулевой expires значит сессионную cookie без срока.
func Expired(p platform.Platform, cs []Cookie, now time.Time) bool {
	for _, c := range cs {
		if !slices.Contains(p.KeyCookies, c.Name) {
			continue
		}

		return c.Expires > 0 && c.Expires < float64(now.Unix())
	}

	return true
}
