package remux

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/StounhandJ/video_download/internal/utils"
)

const (
	DefaultBinary = "ffmpeg"

	InstallHint = "提示: 请确保已安装 ffmpeg (brew install ffmpeg)"

	maxOutputRunes = 300
)

var ErrNotInstalled = errors.New("ffmpeg not found")

// Error неудачный запуск ffmpeg, Output обрезан до 300 символов
type Error struct {
	Output string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("ffmpeg: %s: %s\n%s", e.Err, e.Output, InstallHint)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// FFmpeg склеивает видео и аудио дорожки без перекодирования
type FFmpeg struct {
	path string
}

func New(path string) *FFmpeg {
	return &FFmpeg{path: utils.StringNotEmptyCoalesce(path, DefaultBinary)}
}

func (f *FFmpeg) Merge(ctx context.Context, video, audio, output string) error {
	bin, err := exec.LookPath(f.path)
	if err != nil {
		return &Error{Err: fmt.Errorf("%w: %w", ErrNotInstalled, err)}
	}

	args := []string{
		"-y",
		"-i", video,
		"-i", audio,
		"-c:v", "copy",
		"-c:a", "copy",
		output,
	}

	utils.Log.Debugf("Запуск %s %v", bin, args)

	var stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stderr = &stderr

	if err = cmd.Run(); err != nil {
		return &Error{
			Output: utils.TruncateRunes(stderr.String(), maxOutputRunes),
			Err:    err,
		}
	}

	return nil
}
