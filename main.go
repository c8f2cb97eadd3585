package main

import (
	"log"

	"mydb/bootstrap"
)

func main() {
	log.Println("Starting mydb...")
	if _, err := bootstrap.Run(); err != nil {
		log.Fatal(err)
	}
}
