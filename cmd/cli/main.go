package main

import (
	"github.com/vladia/corretora-go/internal/cli"
)

func main() {
	cli.Execute()
}
