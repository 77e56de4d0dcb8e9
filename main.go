package main

import "github.com/hoppxi/brightbar/internal/cmd"

func main() {
	cmd.Execute()
}
