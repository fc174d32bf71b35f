package main

import "github.com/nholden/mailsort/internal/cli"

func main() {
	cli.Execute()
}
