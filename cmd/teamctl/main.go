package main

import (
	"github.com/teamhubhq/teamhub/internal/cli"
)

func main() {
	cli.Execute()
}
