// Command slacklane posts, updates and deletes slack messages, uploads files and lists files
// from build pipelines. Every option can be set with a flag or its environment variable and
// the result of the slack api call is printed as JSON
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
