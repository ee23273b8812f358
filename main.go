package main

import "ethwatchd/cmd"

func main() {
	cmd.Execute()
}
