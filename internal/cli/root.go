package cli

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/vietddude/stylelog"

	"github.com/locarlabs/datajud/internal/core/config"
	"github.com/locarlabs/datajud/internal/core/domain"
	"github.com/locarlabs/datajud/internal/infra/datajud"
	"github.com/locarlabs/datajud/internal/infra/export"
	"github.com/locarlabs/datajud/internal/pipeline"
)

var (
	cfgPath string
	isDebug bool

	partyName string
	partyDoc  string
	tribunals []string
	maxPages  int
	sinceDate string
	sinceDays int

	excelPath  string
	csvPath    string
	sqlitePath string
	pdfPath    string
	txtPath    string
	noPDF      bool
	selfTest   bool
)

var rootCmd = &cobra.Command{
	Use:   "datajud",
	Short: "DataJud case retrieval pipeline",
	Long: `datajud collects legal case records for a party from the CNJ DataJud
public API, derives deadline, decision and execution signals from each
case's movement log, and exports the consolidated results.`,
	Run: runPipeline,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "config file (default is config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&isDebug, "debug", false, "enable debug logging")

	rootCmd.Flags().StringVar(&partyName, "nome", "", "party name to search for")
	rootCmd.Flags().StringVar(&partyDoc, "cnpj", "", "party document (CNPJ/CPF) to search for")
	rootCmd.Flags().StringSliceVar(&tribunals, "tribunais", nil, "tribunal codes to query, e.g. tjpe,tjba,trf5")
	rootCmd.Flags().IntVar(&maxPages, "max-paginas", 0, "maximum pages per tribunal, 100 cases each (default from config: 25)")
	rootCmd.Flags().StringVar(&sinceDate, "desde", "", "minimum distribution date (YYYY-MM-DD)")
	rootCmd.Flags().IntVar(&sinceDays, "since-days", 0, "look back N days from today instead of --desde")

	rootCmd.Flags().StringVar(&excelPath, "excel", "", "write an xlsx report to this path")
	rootCmd.Flags().StringVar(&csvPath, "csv", "", "write a csv report to this path")
	rootCmd.Flags().StringVar(&sqlitePath, "sqlite", "", "write a sqlite database to this path")
	rootCmd.Flags().StringVar(&pdfPath, "pdf", "", "write a pdf report to this path (falls back to txt)")
	rootCmd.Flags().StringVar(&txtPath, "txt", "", "write a plain-text report to this path")
	rootCmd.Flags().BoolVar(&noPDF, "no-pdf", false, "skip pdf generation even when --pdf is set")
	rootCmd.Flags().BoolVar(&selfTest, "selftest", false, "run the export path on synthetic records, no network calls")
}

func runPipeline(cmd *cobra.Command, args []string) {
	_ = godotenv.Load()

	// Load Configuration
	cfg, err := config.Load(cfgPath)
	if err != nil {
		stylelog.InitDefault()
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup logging
	slogLevel := slog.LevelInfo
	if isDebug || cfg.Logging.Level == "debug" {
		slogLevel = slog.LevelDebug
	}

	stylelog.InitDefault(&tint.Options{
		Level:      slogLevel,
		TimeFormat: time.RFC3339,
	})

	// Configuration errors are fatal before any network activity.
	since, err := resolveSince(sinceDate, sinceDays, time.Now())
	if err != nil {
		slog.Error("Invalid --desde value, expected YYYY-MM-DD", "value", sinceDate, "error", err)
		os.Exit(1)
	}

	var records []domain.CaseRecord
	if selfTest {
		records = selftestRecords()
		slog.Info("Selftest mode, using synthetic records", "total", len(records))
	} else {
		if partyName == "" || partyDoc == "" || len(tribunals) == 0 {
			slog.Error("--nome, --cnpj and --tribunais are required unless --selftest is set")
			os.Exit(1)
		}
		if cfg.API.Key == "" {
			slog.Error("DataJud API key missing, set DATAJUD_API_KEY or api.key in the config file")
			os.Exit(1)
		}

		pages := maxPages
		if pages <= 0 {
			pages = cfg.Search.MaxPages
		}

		client := datajud.NewClient(cfg.API.BaseURL, cfg.API.Key, cfg.API.Retry, cfg.API.Timeout)
		agg := pipeline.NewAggregator(client, pipeline.Config{
			PartyName:     partyName,
			PartyDocument: partyDoc,
			MaxPages:      pages,
			PageSize:      cfg.Search.PageSize,
			Since:         since,
			Vocabulary:    cfg.Vocabulary,
		})

		records = agg.Run(cmd.Context(), tribunals)
		slog.Info("Aggregation finished", "total", len(records))
	}

	runExports(cmd.Context(), records)
}

// resolveSince turns the date-filter flags into a cutoff. --desde wins over
// --since-days; the zero time means no filter.
func resolveSince(desde string, days int, now time.Time) (time.Time, error) {
	if desde != "" {
		t, err := time.Parse("2006-01-02", desde)
		if err != nil {
			return time.Time{}, err
		}
		return t, nil
	}
	if days > 0 {
		return now.AddDate(0, 0, -days), nil
	}
	return time.Time{}, nil
}

func runExports(ctx context.Context, records []domain.CaseRecord) {
	var attempts []export.Attempt
	if excelPath != "" {
		attempts = append(attempts, export.Attempt{Sink: export.ExcelSink{Path: excelPath}})
	}
	if csvPath != "" {
		attempts = append(attempts, export.Attempt{Sink: export.CSVSink{Path: csvPath}})
	}
	if sqlitePath != "" {
		attempts = append(attempts, export.Attempt{Sink: export.SQLiteSink{Path: sqlitePath}})
	}
	if pdfPath != "" && !noPDF {
		fallback := strings.TrimSuffix(pdfPath, filepath.Ext(pdfPath)) + ".txt"
		attempts = append(attempts, export.Attempt{
			Sink:     export.PDFSink{Path: pdfPath},
			Fallback: &export.Attempt{Sink: export.TextSink{Path: fallback}},
		})
	}
	if txtPath != "" {
		attempts = append(attempts, export.Attempt{Sink: export.TextSink{Path: txtPath}})
	}

	if len(attempts) == 0 {
		if err := export.WriteJSON(os.Stdout, records); err != nil {
			slog.Error("Failed to print records", "error", err)
			os.Exit(1)
		}
		return
	}

	export.Run(ctx, attempts, records)
}
