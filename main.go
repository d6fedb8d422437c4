package main

import "github.com/shushrut/shushrut_backend/cmd"

func main() {
	cmd.Execute()
}
