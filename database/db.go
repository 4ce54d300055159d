// database/db.go
package database

import (
	"database/sql"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	_ "modernc.org/sqlite"
)

// Open abre el datamart SQLite del dashboard
// Si el archivo no existe y hay una URL configurada, primero lo descarga
func Open(path, downloadURL string) (*sql.DB, error) {
	if err := DownloadIfMissing(path, downloadURL); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error al abrir el datamart %s: %w", path, err)
	}

	// El dashboard solo lee; una conexión evita bloqueos de escritor de SQLite
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("no se pudo activar la verificación de claves foráneas: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("no se pudo establecer conexión con el datamart: %w", err)
	}

	log.Println("✅ Datamart abierto:", path)
	return db, nil
}

// DownloadIfMissing descarga el archivo del datamart si no existe localmente
func DownloadIfMissing(path, downloadURL string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if downloadURL == "" {
		return fmt.Errorf("el datamart %s no existe y no hay URL de descarga configurada", path)
	}

	log.Println("Descargando el datamart desde:", downloadURL)

	client := &http.Client{Timeout: 5 * time.Minute}
	resp, err := client.Get(downloadURL)
	if err != nil {
		return fmt.Errorf("error al descargar el datamart: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("error al descargar el datamart: estado HTTP %d", resp.StatusCode)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error al crear el archivo del datamart: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, resp.Body); err != nil {
		// Un archivo a medio descargar no debe quedar como datamart válido
		os.Remove(path)
		return fmt.Errorf("error al guardar el datamart: %w", err)
	}

	log.Println("✅ Descarga del datamart completada")
	return nil
}
