package main

import "github.com/djcass44/debviz/cmd"

var version = "dev"

func main() {
	cmd.Execute(version)
}
