package main

import (
	"os"

	"github.com/abdidvp/shopcart/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
