package main

import "github.com/howeyc/expense/expense/cmd"

func main() {
	cmd.Execute()
}
