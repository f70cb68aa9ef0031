package main

import "github.com/tbreslin/cadence/cmd"

func main() {
	cmd.Execute()
}
