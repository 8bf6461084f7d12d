package main

import "github.com/sessiontools/loginenv/cmd"

func main() {
	cmd.Execute()
}
