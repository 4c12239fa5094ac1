// import_parts importa una planilla de repuestos (.xlsx o .csv) fila a fila, igual que
// POST /api/spare-parts/import/file, y escribe el resultado como JSON en stdout.
//
// Uso: go run ./cmd/import_parts [-charset windows-1252] [-dry-run] ruta/reservdelar.xlsx
//
// Con -dry-run las filas se registran en un almacén en memoria: sirve para validar
// la planilla (rowErrors) sin tocar la base de datos.
// La importación NO es transaccional: si se detiene (failedAt), las filas anteriores quedan guardadas.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/jhoicas/Repuestos-api/internal/application/inventory"
	"github.com/jhoicas/Repuestos-api/internal/application/ports"
	"github.com/jhoicas/Repuestos-api/internal/application/usecase"
	domaininv "github.com/jhoicas/Repuestos-api/internal/domain/inventory"
	"github.com/jhoicas/Repuestos-api/internal/infrastructure/memory"
	"github.com/jhoicas/Repuestos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Repuestos-api/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/Repuestos-api/pkg/config"
	"github.com/jhoicas/Repuestos-api/pkg/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run devuelve el código de salida: 0 ok, 1 error o importación detenida, 2 uso incorrecto.
// Los defer (archivo, pool, señales) se ejecutan antes de salir.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("import_parts", flag.ContinueOnError)
	fs.SetOutput(stderr)
	charset := fs.String("charset", "", "codificación del CSV: utf-8, windows-1252 (vacío = detectar)")
	dryRun := fs.Bool("dry-run", false, "validar contra un almacén en memoria, sin base de datos")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "uso: import_parts [-charset X] [-dry-run] <archivo.xlsx|archivo.csv>")
		return 2
	}
	path := fs.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Cargar configuración: %v\n", err)
		return 1
	}
	// Logs a stderr: stdout queda para el JSON del resultado.
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "import_parts", Out: stderr})

	format, err := formatOf(path)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("formato de archivo")
		return 2
	}
	f, err := os.Open(path)
	if err != nil {
		log.Error().Err(err).Msg("abrir planilla")
		return 1
	}
	defer f.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var txRunner inventory.TxRunner
	if *dryRun {
		txRunner = memory.NewStore()
		log.Info().Msg("dry-run: almacén en memoria")
	} else {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Error().Err(err).Msg("conexión a PostgreSQL")
			return 1
		}
		defer pool.Close()
		if cfg.DB.RunMigrations {
			if err := postgres.RunMigrations(pool); err != nil {
				log.Error().Err(err).Msg("migraciones")
				return 1
			}
		}
		txRunner = postgres.NewTxRunner(pool)
	}

	quantityUC := inventory.NewQuantityUseCase(txRunner, domaininv.LedgerDefaults{
		Actor:         cfg.Ledger.DefaultActor,
		Comment:       cfg.Ledger.DefaultComment,
		CreatorPrefix: cfg.Ledger.CreatorPrefix,
	}, nil, log)
	importUC := usecase.NewImportUseCase(quantityUC, spreadsheet.NewReader(), log)

	res, importErr := importUC.ImportFile(ctx, f, ports.ReadOptions{Format: format, Charset: *charset})
	if res != nil {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			log.Error().Err(err).Msg("escribir resultado")
		}
	}
	if importErr != nil {
		log.Error().Err(importErr).Msg("importación con errores")
		return 1
	}
	return 0
}

func formatOf(path string) (ports.SheetFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return ports.FormatXLSX, nil
	case ".csv":
		return ports.FormatCSV, nil
	default:
		return "", fmt.Errorf("extensión no soportada %q (se espera .xlsx o .csv)", filepath.Ext(path))
	}
}
