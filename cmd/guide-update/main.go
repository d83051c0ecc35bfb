package main

import (
	"github.com/setosa-versicolor/BlackhawkDiscussionGuide/internal/cli"
)

func main() {
	cli.Execute()
}
