package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/davidmorac/asadero-pos/internal/infrastructure/database"
)

func main() {
	// Cargar variables de entorno
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: archivo .env no encontrado: %v", err)
	}

	path := flag.String("path", "migrations", "directorio con los archivos de migración")
	down := flag.Bool("down", false, "revertir la última migración en lugar de aplicar")
	flag.Parse()

	if *down {
		if err := database.RollbackMigration(*path); err != nil {
			log.Fatalf("Error al revertir la migración: %v", err)
		}
		log.Println("Migración revertida con éxito")
		return
	}

	if err := database.RunMigrations(*path); err != nil {
		log.Fatalf("Error al ejecutar las migraciones: %v", err)
	}

	log.Println("Migraciones ejecutadas con éxito")
}
