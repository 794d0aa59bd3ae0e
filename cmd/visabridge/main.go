package main

import "github.com/joho/godotenv"

func main() {
	// Credentials may live in a local .env during development; deployments
	// set the environment directly.
	_ = godotenv.Load()
	Execute()
}
