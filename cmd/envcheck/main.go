// Command envcheck prints how the process sees its environment after the
// .env overlay, for debugging local setups.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

func main() {
	// The .env file is optional; real environment variables win either way.
	_ = godotenv.Load()

	apiKey := os.Getenv("API_KEY")
	debugMode := strings.EqualFold(os.Getenv("DEBUG_MODE"), "true")

	fmt.Printf("API_KEY: %s\n", apiKey)
	fmt.Printf("DEBUG_MODE: %v\n", debugMode)

	if debugMode {
		fmt.Println("Application is running in debug mode")
	} else {
		fmt.Println("Application is running in normal mode")
	}
}
