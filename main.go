package main

import "github.com/kitbash/renamer/cmd"

func main() {
	cmd.Execute()
}
