package main

import "webpage_generator/cmd"

func main() {
	cmd.Execute()
}
