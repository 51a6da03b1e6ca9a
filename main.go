package main

import "budgeteer/cmd"

func main() {
	cmd.Execute()
}
