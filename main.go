package main

import "github.com/alexiusacademia/gowall/cmd"

func main() {
	cmd.Execute()
}
