package commands

import "fmt"

const usage = `thumbnail-server

Usage:
  thumbnail-server run <config.yml>   start the server
  thumbnail-server version            print the version
  thumbnail-server help               print this help
`

func HandleHelp(_ []string) {
	fmt.Print(usage) //nolint
}
