package main

import (
	"os"

	"github.com/dasdy/stockroom/cmd/stockroom"
	"github.com/dasdy/stockroom/logging"
)

func main() {
	logging.Setup(os.Stderr, os.Getenv("STOCKROOM_DEBUG") != "")
	stockroom.Execute()
}
