package main

import "github.com/kozaktomas/img2pdf/cmd"

func main() {
	cmd.Execute()
}
