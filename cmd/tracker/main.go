package main

import "github.com/dom/league-improvement-tracker/internal/cli"

func main() {
	cli.Execute()
}
