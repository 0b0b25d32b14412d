package main

import "projectx/cmd/projectx/cmd"

func main() {
	cmd.Execute()
}
