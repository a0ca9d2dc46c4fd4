package commands

import (
	"os"

	"github.com/SniffleSneeze/thumbnail-server/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("thumbnail-server error", "err", err.Error())
	os.Exit(1)
}
