package main

import (
	"os"

	"github.com/quiz2biz/quiz2biz/internal/infrastructure/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
