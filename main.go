package main

import "github.com/devinvenable/github-stats/cmd"

func main() {
	cmd.Execute()
}
