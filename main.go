package main

import "github.com/LegacyCodeHQ/unify/cmd"

func main() {
	cmd.Execute()
}
