package main

import "github.com/mechsouls/ASCII-DNA-Translator/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}
