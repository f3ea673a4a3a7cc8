package main

import "moneyquest/cmd"

func main() {
	cmd.Execute()
}
