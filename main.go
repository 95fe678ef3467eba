package main

import (
	"runtime"

	"snake-arcade/cmd"
)

// raylib must run on the main OS thread
func init() {
	runtime.LockOSThread()
}

func main() {
	cmd.Execute()
}
