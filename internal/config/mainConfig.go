package config

type Config struct {
	Application Application `yaml:"Application" env:"VD" flag:""`
	Browser     Browser     `yaml:"Browser" env:"VD_BROWSER" flag:"browser"`
	Telegram    Telegram    `yaml:"Telegram" env:"VD_TELEGRAM" flag:"telegram"`
}

type Application struct {
	LogLevel    string `yaml:"LogLevel" env:"LOGLEVEL" flag:"log-level" usage:"Уровень логов: debug, info, warning, error"`
	OutputDir   string `yaml:"OutputDir" env:"OUTPUT_DIR" flag:"output-dir" usage:"Каталог для готовых видео"`
	CookieDir   string `yaml:"CookieDir" env:"COOKIE_DIR" flag:"cookie-dir" usage:"Каталог с cookie площадок"`
	ScratchDir  string `yaml:"ScratchDir" env:"SCRATCH_DIR" flag:"scratch-dir" usage:"Каталог для временных потоков B站"`
	ProxyURL    string `yaml:"ProxyURL" env:"PROXY_URL" flag:"proxy-url" usage:"Прокси для отправки запросов"`
	InsecureTLS bool   `yaml:"InsecureTLS" env:"INSECURE_TLS" flag:"insecure-tls" usage:"Не проверять TLS сертификаты"`
	FFmpegPath  string `yaml:"FFmpegPath" env:"FFMPEG" flag:"ffmpeg" usage:"Путь к ffmpeg"`
	UserAgent   string `yaml:"UserAgent" env:"USER_AGENT" flag:"user-agent" cli:"hidden"`
}

type Browser struct {
	ChromePath        string   `yaml:"ChromePath" env:"CHROME" flag:"chrome" usage:"Путь к Chrome/Chromium, по умолчанию ищется в системе"`
	CaptureWait       Duration `yaml:"CaptureWait" usage:"Первое окно ожидания видеопотока"`
	ExtraWait         Duration `yaml:"ExtraWait" usage:"Дополнительное окно ожидания"`
	RenderWait        Duration `yaml:"RenderWait" usage:"Ожидание отрисовки страницы перед выполнением скрипта"`
	NavigationTimeout Duration `yaml:"NavigationTimeout" usage:"Таймаут загрузки страницы"`
	LoginTimeout      Duration `yaml:"LoginTimeout" usage:"Сколько ждать входа в аккаунт"`
}

type Telegram struct {
	BotToken string `yaml:"BotToken" env:"BOT_TOKEN" flag:"bot-token" usage:"Токен телегам бота для пересылки видео"`
	ChatID   int64  `yaml:"ChatID" env:"CHAT_ID" flag:"chat-id" usage:"Чат, куда пересылать видео"`
}
