package main

import "github.com/naka-gawa/github-profile-readme/cmd"

func main() {
	cmd.Execute()
}
