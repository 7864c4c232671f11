// ABOUTME: Main entry point for the Twitch VOD RSS server
// ABOUTME: Runs the cobra command tree; serving is the default action

package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
