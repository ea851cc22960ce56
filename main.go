package main

import "github.com/mmuldo/personalcolor/cmd"

func main() {
	cmd.Execute()
}
