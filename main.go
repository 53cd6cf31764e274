package main

import (
	"context"
	"os"

	"tabebui/cmd"
	"tabebui/internal/config"

	"github.com/charmbracelet/fang"
)

func main() {
	root := cmd.NewRootCmd()

	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(config.AppVersion),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}
