package main

import "github.com/OpenTraceLab/OpenTraceDRC/cmd/otd/cmd"

func main() {
	cmd.Execute()
}
