package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
	"github.com/sapdash/proyectos_datamart/ETL/config"
	"github.com/sapdash/proyectos_datamart/ETL/extractors"
	"github.com/sapdash/proyectos_datamart/ETL/linear_regression"
	"github.com/sapdash/proyectos_datamart/ETL/load"
	"github.com/sapdash/proyectos_datamart/ETL/models"
	"github.com/sapdash/proyectos_datamart/ETL/partnerrank"
	"github.com/sapdash/proyectos_datamart/ETL/transform"
	"github.com/sapdash/proyectos_datamart/ETL/utils"
)

// ETLRunner orquesta el proceso completo staging -> esquema estrella
type ETLRunner struct {
	config        config.ETLConfig
	dbConnections *config.DBConnections
	logger        *utils.ETLLogger
	extractor     *extractors.Extractor
	transformer   *transform.Transformer
	loadManager   *load.LoadManager
	etlLogRepo    models.ETLLogRepository
}

// NewETLRunner crea un nuevo ETLRunner
func NewETLRunner() (*ETLRunner, error) {
	// Obtenemos la configuración
	etlConfig := config.GetConfig()

	// Inicializamos el logger
	logger := utils.NewETLLogger(etlConfig.EnableDetailedLogging)
	logger.Info("Inicialización del ETL Runner")

	// Conectamos con el staging y el datamart
	connections, err := config.ConnectDatabases(etlConfig)
	if err != nil {
		return nil, fmt.Errorf("error al conectar con las bases de datos: %w", err)
	}

	// Verificamos el esquema estrella del datamart
	if err := load.CreateSchema(connections.DatamartDB, logger); err != nil {
		return nil, fmt.Errorf("error al verificar el esquema del datamart: %w", err)
	}

	// Inicializamos el repositorio del journal de corridas
	etlLogRepo := models.NewSQLiteETLLogRepository(connections.DatamartDB)

	// Creamos la tabla del journal si aún no existe
	if err := etlLogRepo.CreateETLLogTable(); err != nil {
		return nil, fmt.Errorf("error al crear la tabla del journal ETL: %w", err)
	}

	return &ETLRunner{
		config:        etlConfig,
		dbConnections: connections,
		logger:        logger,
		extractor:     extractors.NewExtractor(connections.StagingDB, logger, etlConfig.BatchSize),
		transformer:   transform.NewTransformer(etlConfig, logger),
		loadManager:   load.NewLoadManager(connections.DatamartDB, logger),
		etlLogRepo:    etlLogRepo,
	}, nil
}

// Close cierra las conexiones del runner
func (r *ETLRunner) Close() {
	r.logger.Info("Cierre del ETL Runner")
	config.CloseDatabases(r.dbConnections)
}

// ExecuteETL ejecuta una corrida completa del proceso ETL
func (r *ETLRunner) ExecuteETL() error {
	r.logger.Info("Inicio de la corrida ETL")
	startTime := time.Now()
	runID := uuid.NewString()

	// Registramos la corrida en el journal
	logID, err := r.etlLogRepo.CreateLogEntry(runID, startTime)
	if err != nil {
		r.logger.Error("Error al registrar la corrida en el journal: %v", err)
		return fmt.Errorf("error al registrar la corrida en el journal: %w", err)
	}

	runLog := &models.ETLRunLog{
		ID:        logID,
		RunID:     runID,
		StartTime: startTime,
		Status:    "in_progress",
	}

	// Recuperamos los metadatos de la última corrida exitosa
	lastRun, err := r.etlLogRepo.GetLastSuccessfulRun()
	if err != nil {
		r.logger.Error("No se pudo obtener la última corrida exitosa: %v. Se ejecuta un ETL completo.", err)
		// Continuamos procesando todos los datos
	}

	var lastRunTime time.Time
	var lastProcessedProjectID int

	if lastRun != nil {
		lastRunTime = lastRun.EndTime
		lastProcessedProjectID = lastRun.LastProcessedProjectID
		r.logger.Info("Última corrida exitosa: %v, último proyecto procesado: %d", lastRunTime, lastProcessedProjectID)
	}

	// 1. Fase Extract
	extractedData, err := r.extractor.Extract(lastRunTime, lastProcessedProjectID)
	if err != nil {
		errMsg := fmt.Sprintf("Error en la fase Extract: %v", err)
		r.logger.Error(errMsg)
		r.updateETLRunLogFailure(runLog, errMsg)
		return fmt.Errorf("error en la fase Extract: %w", err)
	}

	// Sin datos nuevos, la corrida termina aquí
	if len(extractedData.Projects) == 0 {
		r.logger.Info("Sin proyectos nuevos para procesar")
		r.updateETLRunLogSuccess(runLog, 0, 0, 0, lastProcessedProjectID)
		return nil
	}

	// Determinamos el último proyecto procesado en este lote
	maxProjectID := lastProcessedProjectID
	for _, p := range extractedData.Projects {
		if p.ID > maxProjectID {
			maxProjectID = p.ID
		}
	}

	// 2. Fase Transform
	transformedData, err := r.transformer.Transform(extractedData)
	if err != nil {
		errMsg := fmt.Sprintf("Error en la fase Transform: %v", err)
		r.logger.Error(errMsg)
		r.updateETLRunLogFailure(runLog, errMsg)
		return fmt.Errorf("error en la fase Transform: %w", err)
	}

	// 3. Fase Load
	if err := r.loadManager.Load(transformedData); err != nil {
		errMsg := fmt.Sprintf("Error en la fase Load: %v", err)
		r.logger.Error(errMsg)
		r.updateETLRunLogFailure(runLog, errMsg)
		return fmt.Errorf("error en la fase Load: %w", err)
	}

	// 4. Pronóstico de tendencia de retrasos sobre el datamart recién cargado
	r.logger.Info("Inicio del pronóstico de tendencia de retrasos")
	if err := r.runDelayForecast(); err != nil {
		r.logger.Error("Error en el pronóstico de tendencia: %v", err)
		// Componente no crítico: la corrida ETL no se aborta
	}

	// 5. Ranking de riesgo por partner
	r.logger.Info("Inicio del ranking de riesgo por partner")
	if err := partnerrank.Run(r.dbConnections.DatamartDB, r.logger); err != nil {
		r.logger.Error("Error en el ranking de partners: %v", err)
		// Componente no crítico: la corrida ETL no se aborta
	}

	r.updateETLRunLogSuccess(runLog,
		len(extractedData.Projects),
		transformedData.TotalDimensionRows(),
		len(transformedData.Facts),
		maxProjectID)

	r.logger.Info("Corrida ETL finalizada con éxito. Duración: %v", time.Since(startTime))
	return nil
}

// updateETLRunLogSuccess actualiza el journal al terminar con éxito
func (r *ETLRunner) updateETLRunLogSuccess(runLog *models.ETLRunLog, projects, dimensionRows, facts, lastProjectID int) {
	runLog.EndTime = time.Now()
	runLog.Status = "success"
	runLog.ProjectsProcessed = projects
	runLog.DimensionRowsLoaded = dimensionRows
	runLog.FactsLoaded = facts
	runLog.LastProcessedProjectID = lastProjectID

	if err := r.etlLogRepo.UpdateLogEntrySuccess(
		runLog.ID,
		runLog.EndTime,
		runLog.ProjectsProcessed,
		runLog.DimensionRowsLoaded,
		runLog.FactsLoaded,
		runLog.LastProcessedProjectID); err != nil {
		r.logger.Error("Error al actualizar el journal ETL: %v", err)
	}
}

// updateETLRunLogFailure actualiza el journal al terminar con error
func (r *ETLRunner) updateETLRunLogFailure(runLog *models.ETLRunLog, errorMessage string) {
	runLog.EndTime = time.Now()
	runLog.Status = "failed"
	runLog.ErrorMessage = errorMessage

	if err := r.etlLogRepo.UpdateLogEntryFailure(
		runLog.ID,
		runLog.EndTime,
		runLog.ErrorMessage); err != nil {
		r.logger.Error("Error al actualizar el journal ETL: %v", err)
	}
}

// StartScheduler lanza el planificador de corridas periódicas
func (r *ETLRunner) StartScheduler(ctx context.Context) {
	scheduler := gocron.NewScheduler(time.UTC)

	r.logger.Info("Inicio del planificador ETL con intervalo %v", r.config.RunInterval)

	_, err := scheduler.Every(r.config.RunInterval).Do(func() {
		r.logger.Info("Corrida ETL programada")
		if err := r.ExecuteETL(); err != nil {
			r.logger.Error("Error en la corrida ETL programada: %v", err)
		}
	})

	if err != nil {
		r.logger.Error("Error al configurar el planificador: %v", err)
		return
	}

	scheduler.StartAsync()

	// Esperamos la señal de parada del contexto
	<-ctx.Done()

	scheduler.Stop()
	r.logger.Info("Planificador ETL detenido")
}

// runDelayForecast ejecuta el pronóstico con la configuración de la corrida
func (r *ETLRunner) runDelayForecast() error {
	forecastConfig := linear_regression.Config{
		AnalysisMonths:  r.config.Forecast.AnalysisMonths,
		HorizonMonths:   r.config.Forecast.HorizonMonths,
		ConfidenceLevel: r.config.Forecast.ConfidenceLevel,
		MinR2Threshold:  r.config.Forecast.MinR2Threshold,
	}

	return linear_regression.RunWithCustomConfig(r.dbConnections.DatamartDB, r.logger, forecastConfig)
}

// RunOnce ejecuta el proceso ETL una sola vez
func RunOnce() {
	runner, err := NewETLRunner()
	if err != nil {
		log.Fatalf("Error al crear el ETL Runner: %v", err)
	}
	defer runner.Close()

	if err := runner.ExecuteETL(); err != nil {
		log.Fatalf("Error al ejecutar el ETL: %v", err)
	}
}

// RunScheduled ejecuta el proceso ETL de forma programada
func RunScheduled() {
	// Contexto cancelado al recibir una señal de terminación
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-signalCh
		log.Println("Señal de terminación recibida. Deteniendo el ETL Runner...")
		cancel()
	}()

	runner, err := NewETLRunner()
	if err != nil {
		log.Fatalf("Error al crear el ETL Runner: %v", err)
	}
	defer runner.Close()

	runner.StartScheduler(ctx)
}

// RunForecast ejecuta solo el pronóstico de tendencia con parámetros propios
func RunForecast(months, horizon int, confidence, minR2 float64) {
	log.Println("Inicio de la utilidad de pronóstico de retrasos")

	runner, err := NewETLRunner()
	if err != nil {
		log.Fatalf("Error al crear el ETL Runner: %v", err)
	}
	defer runner.Close()

	forecastConfig := linear_regression.Config{
		AnalysisMonths:  months,
		HorizonMonths:   horizon,
		ConfidenceLevel: confidence,
		MinR2Threshold:  minR2,
	}

	runner.logger.Info("Pronóstico con parámetros: meses=%d, horizonte=%d, confianza=%.2f, mínR²=%.2f",
		months, horizon, confidence, minR2)

	if err := linear_regression.RunWithCustomConfig(runner.dbConnections.DatamartDB, runner.logger, forecastConfig); err != nil {
		log.Fatalf("Error al ejecutar el pronóstico: %v", err)
	}

	log.Println("Pronóstico finalizado con éxito")
}

func main() {
	// Parámetros de línea de comandos
	modePtr := flag.String("mode", "scheduled", "Modo de ejecución: scheduled, once o forecast")
	monthsPtr := flag.Int("months", 12, "Meses de historia a analizar (solo modo forecast)")
	horizonPtr := flag.Int("horizon", 3, "Meses a pronosticar (solo modo forecast)")
	confidencePtr := flag.Float64("confidence", 0.95, "Nivel de confianza (solo modo forecast)")
	minR2Ptr := flag.Float64("min-r2", 0.30, "Umbral mínimo de R² (solo modo forecast)")

	flag.Parse()

	log.Println("Inicio del ETL Runner en modo:", *modePtr)

	switch *modePtr {
	case "once":
		RunOnce()
	case "scheduled":
		RunScheduled()
	case "forecast":
		RunForecast(*monthsPtr, *horizonPtr, *confidencePtr, *minR2Ptr)
	default:
		log.Println("Modo de ejecución desconocido:", *modePtr)
		log.Println("Modos disponibles: scheduled, once, forecast")
		os.Exit(1)
	}

	log.Println("ETL Runner finalizado")
}
