// Command content-store serves the global, en and ar content records the
// site loads at startup and the admin editor publishes to.
package main

import (
	"log"
	"os"

	"github.com/ModelHouseContracting/modelhouse-go/internal/application/startup"
)

func main() {
	if err := startup.InitializeStore(); err != nil {
		log.Printf("Content store startup failed: %v", err)
		os.Exit(1)
	}
	log.Println("Content store has shut down gracefully.")
}
