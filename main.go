package main

import "github.com/btms-qa/uireport/cmd"

func main() {
	cmd.Execute()
}
