package main

import (
	"github.com/jcarrick/flagboard/internal/cli"
)

func main() {
	cli.Execute()
}
