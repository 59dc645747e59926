package main

import "github.com/streambinder/playlistify/cmd"

func main() {
	cmd.Execute()
}
