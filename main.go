package main

import "github.com/jsphweid/phrasecheck/cmd"

func main() {
	cmd.Execute()
}
