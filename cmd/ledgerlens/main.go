package main

import (
	"github.com/ledgerlens/ledgerlens/internal/cli"
)

func main() {
	cli.Execute()
}
