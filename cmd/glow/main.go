package main

import "github.com/tessro/glow/internal/cli"

func main() {
	cli.Execute()
}
