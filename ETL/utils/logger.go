package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

// ETLLogger representa el logger del proceso ETL
type ETLLogger struct {
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	isVerbose   bool
	mirror      bool
}

// NewETLLogger crea un nuevo logger para el ETL
func NewETLLogger(verbose bool) *ETLLogger {
	// Creamos o abrimos el archivo de log del día
	currentTime := time.Now().Format("2006-01-02")
	logFileName := fmt.Sprintf("etl_log_%s.log", currentTime)

	file, err := os.OpenFile(logFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("No se pudo abrir o crear el archivo de log: %v", err)
	}

	// Inicializamos los loggers por nivel
	infoLogger := log.New(file, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	errorLogger := log.New(file, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	debugLogger := log.New(file, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

	return &ETLLogger{
		infoLogger:  infoLogger,
		errorLogger: errorLogger,
		debugLogger: debugLogger,
		isVerbose:   verbose,
		mirror:      true,
	}
}

// NewDiscardLogger crea un logger que descarta toda la salida, para pruebas
func NewDiscardLogger() *ETLLogger {
	discard := log.New(io.Discard, "", 0)
	return &ETLLogger{
		infoLogger:  discard,
		errorLogger: discard,
		debugLogger: discard,
	}
}

// Info registra un mensaje informativo
func (l *ETLLogger) Info(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	l.infoLogger.Println(msg)

	// También lo escribimos en la salida estándar
	if l.mirror {
		log.Println("INFO:", msg)
	}
}

// Error registra un mensaje de error
func (l *ETLLogger) Error(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	l.errorLogger.Println(msg)

	// También lo escribimos en la salida estándar
	if l.mirror {
		log.Println("ERROR:", msg)
	}
}

// Debug registra un mensaje de depuración (solo en modo verbose)
func (l *ETLLogger) Debug(format string, v ...interface{}) {
	if !l.isVerbose {
		return
	}

	msg := fmt.Sprintf(format, v...)
	l.debugLogger.Println(msg)

	// También lo escribimos en la salida estándar
	if l.mirror {
		log.Println("DEBUG:", msg)
	}
}

// LogETLStart registra el inicio del proceso ETL
func (l *ETLLogger) LogETLStart() {
	l.Info("Inicio del proceso ETL")
}

// LogETLComplete registra el fin del proceso ETL
func (l *ETLLogger) LogETLComplete(startTime time.Time, projects, dimensionRows, facts int) {
	duration := time.Since(startTime)
	l.Info("Proceso ETL finalizado. Duración: %v", duration)
	l.Info("Procesados: %d proyectos, %d filas de dimensión, %d hechos", projects, dimensionRows, facts)
}

// LogExtractStart registra el inicio de la fase Extract
func (l *ETLLogger) LogExtractStart() {
	l.Info("Inicio de la fase Extract (extracción del staging)")
}

// LogExtractComplete registra el fin de la fase Extract
func (l *ETLLogger) LogExtractComplete(projects, customers, waves, partners int, duration time.Duration) {
	l.Info("Fase Extract finalizada. Duración: %v", duration)
	l.Info("Extraídos: %d proyectos, %d clientes, %d waves, %d partners", projects, customers, waves, partners)
}

// LogTransformStart registra el inicio de la fase Transform
func (l *ETLLogger) LogTransformStart() {
	l.Info("Inicio de la fase Transform (construcción del esquema estrella)")
}

// LogTransformComplete registra el fin de la fase Transform
func (l *ETLLogger) LogTransformComplete(dimensionRows, facts int, duration time.Duration) {
	l.Info("Fase Transform finalizada. Duración: %v", duration)
	l.Info("Generadas %d filas de dimensión y %d hechos", dimensionRows, facts)
}
