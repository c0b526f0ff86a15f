package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"ritualform/internal/config"
	"ritualform/internal/importer"
	"ritualform/internal/layout"
	"ritualform/internal/logger"
	"ritualform/internal/open"
	"ritualform/internal/preview"
	"ritualform/internal/render"
	"ritualform/internal/store"
	"ritualform/internal/types"
)

// App is the main application controller. It integrates all modules
// (ConfigManager, Store, Renderer, Preview) and manages their lifecycle.
type App struct {
	configManager *config.ConfigManager
	store         *store.Store
	renderer      *render.Renderer
	fonts         *render.FontRegistry
	page          layout.Page
	fields        []layout.FieldSpec
	outputDir     string
}

// NewApp creates a new App with the default configuration location.
func NewApp() (*App, error) {
	return NewAppWithConfig("")
}

// NewAppWithConfig creates a new App with a custom config path.
// This is useful for testing or when a specific configuration location
// is needed.
func NewAppWithConfig(configPath string) (*App, error) {
	cm, err := config.NewConfigManager(configPath)
	if err != nil {
		return nil, err
	}
	if err := cm.Load(); err != nil {
		return nil, err
	}

	page, err := cm.GetPage()
	if err != nil {
		return nil, err
	}
	fields, err := cm.GetLayout()
	if err != nil {
		return nil, err
	}

	st, err := store.Open(cm.GetDatabasePath())
	if err != nil {
		return nil, err
	}

	opts := render.Options{
		TemplatePath: cm.GetTemplatePath(),
		FontPaths:    cm.GetFontPaths(),
	}
	app := &App{
		configManager: cm,
		store:         st,
		renderer:      render.New(page, fields, opts),
		fonts:         render.NewFontRegistry(cm.GetFontPaths()),
		page:          page,
		fields:        fields,
		outputDir:     cm.GetOutputDir(),
	}

	logger.Info("application initialized",
		logger.String("pageSize", cm.GetConfig().PageSize),
		logger.String("layout", cm.GetConfig().LayoutName),
		logger.String("outputDir", app.outputDir),
	)
	return app, nil
}

// Close releases the application's resources.
func (a *App) Close() error {
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}

// GetConfig returns the config manager.
func (a *App) GetConfig() *config.ConfigManager {
	return a.configManager
}

// GetStore returns the record store.
func (a *App) GetStore() *store.Store {
	return a.store
}

// SaveRecord validates and stores a certificate record, returning its id.
// The designation, Mandarin name and sender fields are required.
func (a *App) SaveRecord(rec types.Record) (string, error) {
	var missing []string
	if strings.TrimSpace(rec.Designation) == "" {
		missing = append(missing, "designation")
	}
	if strings.TrimSpace(rec.Mandarin) == "" {
		missing = append(missing, "mandarin")
	}
	if strings.TrimSpace(rec.Sender) == "" {
		missing = append(missing, "sender")
	}
	if len(missing) > 0 {
		return "", types.NewAppErrorWithDetails(types.ErrInvalidInput,
			"必填字段为空", strings.Join(missing, ", "), nil)
	}

	id, err := a.store.Create(rec)
	if err != nil {
		return "", err
	}
	logger.Info("record saved",
		logger.String("id", id),
		logger.String("designation", rec.Designation),
	)
	return id, nil
}

// ListRecords returns all stored records, newest first.
func (a *App) ListRecords() ([]types.Record, error) {
	return a.store.List()
}

// DeleteRecord removes a record. It reports whether the record existed.
func (a *App) DeleteRecord(id string) (bool, error) {
	ok, err := a.store.Delete(id)
	if err != nil {
		return false, err
	}
	if ok {
		logger.Info("record deleted", logger.String("id", id))
	}
	return ok, nil
}

// PrintRecord renders the stored record to a PDF using the given offset
// strings and returns the absolute output path. When openAfter is true
// the generated file is opened with the system viewer.
func (a *App) PrintRecord(id, offsetX, offsetY string, openAfter bool) (string, error) {
	rec, err := a.store.Get(id)
	if err != nil {
		return "", err
	}
	return a.printValues(rec.Values(), offsetX, offsetY, openAfter)
}

// PrintValues renders a one-off field-value map without storing it.
func (a *App) PrintValues(values types.FieldValues, offsetX, offsetY string, openAfter bool) (string, error) {
	return a.printValues(values, offsetX, offsetY, openAfter)
}

func (a *App) printValues(values types.FieldValues, offsetX, offsetY string, openAfter bool) (string, error) {
	off, err := layout.ParseOffset(offsetX, offsetY)
	if err != nil {
		return "", err
	}

	outPath := filepath.Join(a.outputDir, ritualFileName())
	path, err := a.renderer.Render(values, off, outPath)
	if err != nil {
		return "", err
	}
	if openAfter {
		open.File(path)
	}
	return path, nil
}

// PrintCalibration renders the calibration grid PDF and returns its path.
func (a *App) PrintCalibration(openAfter bool) (string, error) {
	outPath := filepath.Join(a.outputDir, "calibration_grid.pdf")
	path, err := a.renderer.RenderCalibration(outPath)
	if err != nil {
		return "", err
	}
	if openAfter {
		open.File(path)
	}
	return path, nil
}

// ImportExcel bulk-imports records from the operator's spreadsheet,
// applying the given lunar date to every imported row. It returns the
// number of records imported.
func (a *App) ImportExcel(path, lunarYear, lunarMonth, lunarDay string) (int, error) {
	defaults := importer.LunarDefaults{Year: lunarYear, Month: lunarMonth, Day: lunarDay}
	return importer.ImportXLSX(path, a.store, defaults)
}

// NewPreview returns a live preview over the configured page and layout.
func (a *App) NewPreview() *preview.Preview {
	return preview.New(a.page, a.fields)
}

// PreviewPNG renders a preview image at the given offset and returns the
// output path.
func (a *App) PreviewPNG(path, offsetX, offsetY string) (string, error) {
	pv := a.NewPreview()
	if err := pv.SetOffsetStrings(offsetX, offsetY); err != nil {
		return "", err
	}

	fontData, _, err := a.fonts.Load()
	if err != nil {
		return "", err
	}
	if err := pv.RenderPNG(path, fontData); err != nil {
		return "", err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}

// ritualFileName builds the output file name for one print job.
func ritualFileName() string {
	short := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("ritual_%s.pdf", short)
}
