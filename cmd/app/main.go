package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/StounhandJ/video_download/internal/config"
	"github.com/StounhandJ/video_download/internal/handlers"
	"github.com/StounhandJ/video_download/internal/utils"
	"github.com/urfave/cli/v3"
)

func main() {
	os.Exit(run())
}

func run() int {
	//------ Получение Конфигурации ------//
	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return 1
	}
	//---------------//

	cmd, err := handlers.NewCommand(&cfg, handlers.DefaultSetup, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return 1
	}

	//------ Прерывание по Ctrl+C закрывает браузер ------//
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	//---------------//

	if err = cmd.Run(ctx, os.Args); err != nil {
		code := 1

		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}

		if msg := err.Error(); msg != "" {
			utils.Log.Debugf("%+v", err)
			fmt.Fprintf(os.Stdout, "错误: %s\n", msg)
		}

		return code
	}

	return 0
}
