package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/df07/go-weighted-raytracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	static := flag.String("static", "static/", "Directory with the browser front end")
	envFile := flag.String("env", ".env", "Environment file to load")
	flag.Parse()

	_ = godotenv.Load(*envFile)

	webServer := server.NewServer(*port)
	webServer.StaticDir = *static

	log.Printf("Weighted Raytracer Web Server")
	log.Printf("Visit http://localhost:%d to start rendering", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
