// Package main provides the itismatch CLI application.
// itismatch maps regional plant checklists onto the ITIS taxonomy.
package main

import "github.com/gnames/itismatch/cmd"

func main() {
	cmd.Execute()
}
