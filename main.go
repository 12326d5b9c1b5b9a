package main

import "wayfind/cmd"

var version = "dev"

func main() {
	cmd.Execute(version)
}
