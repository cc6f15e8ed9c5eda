package telegram

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/StounhandJ/video_download/internal/utils"
	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
)

const (
	// Лимит Bot API на загрузку файла
	maxUploadSize = 50 << 20
	captionLimit  = 1024
)

var ErrTooLarge = errors.New("file exceeds telegram upload limit")

// Forwarder пересылает скачанные ролики в чат
type Forwarder struct {
	bot    *telego.Bot
	chatID int64
}

func NewForwarder(token string, chatID int64, debug bool, opts ...telego.BotOption) (*Forwarder, error) {
	opts = append([]telego.BotOption{telego.WithDefaultLogger(debug, true)}, opts...)

	bot, err := telego.NewBot(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("telego.NewBot: %w", err)
	}

	return &Forwarder{bot: bot, chatID: chatID}, nil
}

// Forward отправляет файл как видео, подпись обрезается до лимита Telegram
func (f *Forwarder) Forward(ctx context.Context, path, caption string) (int, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return 0, err
	}

	if stat.Size() > maxUploadSize {
		return 0, fmt.Errorf("%w: %s (%s)", ErrTooLarge, path, utils.FormatMB(stat.Size()))
	}

	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}

	defer func() {
		if cerr := file.Close(); cerr != nil {
			utils.Log.Error(cerr)
		}
	}()

	msg, err := f.bot.SendVideo(ctx, &telego.SendVideoParams{
		ChatID:            tu.ID(f.chatID),
		Video:             tu.File(file),
		Caption:           utils.TruncateRunes(caption, captionLimit),
		SupportsStreaming: true,
	})
	if err != nil {
		return 0, fmt.Errorf("SendVideo: %w", err)
	}

	return msg.MessageID, nil
}
