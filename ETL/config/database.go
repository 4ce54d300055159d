package config

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// DBConnections contiene las conexiones a las bases de datos del ETL
type DBConnections struct {
	StagingDB  *sql.DB
	DatamartDB *sql.DB
}

// ConnectDatabases abre las conexiones al staging MySQL y al datamart SQLite
func ConnectDatabases(config ETLConfig) (*DBConnections, error) {
	var connections DBConnections
	var err error

	// Conexión al staging (origen)
	stagingDSN := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		config.StagingConfig.User,
		config.StagingConfig.Password,
		config.StagingConfig.Host,
		config.StagingConfig.Port,
		config.StagingConfig.DBName,
	)

	connections.StagingDB, err = sql.Open(config.StagingConfig.Driver, stagingDSN)
	if err != nil {
		return nil, fmt.Errorf("error al conectar con el staging: %w", err)
	}

	// Parámetros del pool de conexiones del staging
	connections.StagingDB.SetMaxOpenConns(10)
	connections.StagingDB.SetMaxIdleConns(5)
	connections.StagingDB.SetConnMaxLifetime(5 * time.Minute)

	// Verificamos la conexión al staging
	if err := connections.StagingDB.Ping(); err != nil {
		connections.StagingDB.Close()
		return nil, fmt.Errorf("no se pudo establecer conexión con el staging: %w", err)
	}

	// Conexión al datamart SQLite (destino)
	connections.DatamartDB, err = sql.Open("sqlite", config.DatamartPath)
	if err != nil {
		connections.StagingDB.Close()
		return nil, fmt.Errorf("error al abrir el datamart %s: %w", config.DatamartPath, err)
	}

	// SQLite: un solo escritor; las claves foráneas deben activarse por conexión
	connections.DatamartDB.SetMaxOpenConns(1)
	if _, err := connections.DatamartDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		connections.StagingDB.Close()
		connections.DatamartDB.Close()
		return nil, fmt.Errorf("no se pudo activar la verificación de claves foráneas: %w", err)
	}

	if err := connections.DatamartDB.Ping(); err != nil {
		connections.StagingDB.Close()
		connections.DatamartDB.Close()
		return nil, fmt.Errorf("no se pudo establecer conexión con el datamart: %w", err)
	}

	log.Println("Conexión establecida con el staging y el datamart")
	return &connections, nil
}

// CloseDatabases cierra las conexiones del ETL
func CloseDatabases(connections *DBConnections) {
	if connections.StagingDB != nil {
		if err := connections.StagingDB.Close(); err != nil {
			log.Printf("Error al cerrar la conexión con el staging: %v", err)
		}
	}

	if connections.DatamartDB != nil {
		if err := connections.DatamartDB.Close(); err != nil {
			log.Printf("Error al cerrar la conexión con el datamart: %v", err)
		}
	}

	log.Println("Conexiones del ETL cerradas")
}
