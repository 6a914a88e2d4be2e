package main

import (
	"log"

	"github.com/joho/godotenv"
)

func main() {
	// Cargar variables de entorno
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: archivo .env no encontrado: %v", err)
	}

	app, err := NewApp()
	if err != nil {
		log.Fatalf("Error al iniciar la aplicación: %v", err)
	}
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatalf("Error al iniciar el servidor: %v", err)
	}
}
