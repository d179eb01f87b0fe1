package main

import "github.com/lk16/flood/cmd"

func main() {
	cmd.Execute()
}
