package main

import "github.com/snackbuddy/deal-tracker/cmd/snackbuddy/cmd"

func main() {
	cmd.Execute()
}
