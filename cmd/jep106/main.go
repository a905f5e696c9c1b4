package main

import "github.com/OpenTraceLab/jep106/cmd/jep106/cmd"

func main() {
	cmd.Execute()
}
