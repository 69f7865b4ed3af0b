package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-kbs-elements/internal/prompt"
	"github.com/goliatone/go-kbs-elements/pkg/controls"
	"github.com/goliatone/go-kbs-elements/pkg/elements"
	"github.com/goliatone/go-kbs-elements/pkg/render"
)

const envPrefix = "KBS"

// Configuration keys, also the KBS_<KEY> environment names.
const (
	keySchema        = "schema"
	keyLocale        = "locale"
	keyCatalog       = "catalog"
	keyStrict        = "strict"
	keyNumberCeiling = "number_ceiling"
	keyVerbose       = "verbose"
	keyAddr          = "addr"
)

type application struct {
	config    *viper.Viper
	stdout    io.Writer
	stderr    io.Writer
	logger    *zap.Logger
	newDriver func() prompt.Driver
	now       elements.Clock
}

func newApplication(stdout, stderr io.Writer) *application {
	return &application{
		config:    viper.New(),
		stdout:    stdout,
		stderr:    stderr,
		logger:    zap.NewNop(),
		newDriver: func() prompt.Driver { return prompt.NewSurveyDriver() },
	}
}

// Command assembles the command tree.
func (app *application) Command() (*cobra.Command, error) {
	root := &cobra.Command{
		Use:          "kbs-elements",
		Short:        "Render knowledge base support form controls",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return app.setupLogger()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = app.logger.Sync()
		},
	}
	root.SetOut(app.stdout)
	root.SetErr(app.stderr)

	app.config.SetEnvPrefix(envPrefix)
	app.config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	app.config.AutomaticEnv()
	app.config.SetDefault(keyNumberCeiling, elements.DefaultNumberCeiling)
	app.config.SetDefault(keyAddr, ":8080")

	flags := root.PersistentFlags()
	flags.String(keySchema, "", "directory of screen documents (defaults to the bundled demo screens)")
	flags.String(keyLocale, "", "locale used for translations, e.g. es_ES")
	flags.String(keyCatalog, "", "YAML translation catalog")
	flags.Bool(keyStrict, false, "fail on controls without a usable id")
	flags.Int("number-ceiling", elements.DefaultNumberCeiling, "upper bound applied to number inputs (0 disables)")
	flags.BoolP(keyVerbose, "v", false, "debug logging")

	for key, flag := range map[string]string{
		keySchema:        keySchema,
		keyLocale:        keyLocale,
		keyCatalog:       keyCatalog,
		keyStrict:        keyStrict,
		keyNumberCeiling: "number-ceiling",
		keyVerbose:       keyVerbose,
	} {
		if err := app.bindFlag(flags, key, flag); err != nil {
			return nil, err
		}
	}

	root.AddCommand(app.renderCommand(), app.promptCommand(), app.serveCommand())
	return root, nil
}

func (app *application) bindFlag(flags *pflag.FlagSet, key, name string) error {
	flag := flags.Lookup(name)
	if flag == nil {
		return fmt.Errorf("kbs-elements: unknown flag %q", name)
	}
	if err := app.config.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("kbs-elements: bind %s: %w", name, err)
	}
	return nil
}

func (app *application) setupLogger() error {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if app.config.GetBool(keyVerbose) {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("kbs-elements: logger: %w", err)
	}
	app.logger = logger
	return nil
}

// screens loads the configured screen directory or the bundled screens.
func (app *application) screens() (*controls.Store, error) {
	dir := strings.TrimSpace(app.config.GetString(keySchema))
	fsys := controls.EmbeddedFS()
	if dir != "" {
		fsys = os.DirFS(dir)
	}
	store, err := controls.LoadFS(fsys)
	if err != nil {
		return nil, err
	}
	app.logger.Debug("screens loaded", zap.String("schema", dir), zap.Strings("ids", store.IDs()))
	return store, nil
}

func (app *application) translator() (render.Translator, error) {
	path := strings.TrimSpace(app.config.GetString(keyCatalog))
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("kbs-elements: open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()
	catalog, err := render.LoadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("kbs-elements: load catalog %s: %w", path, err)
	}
	return catalog, nil
}

// elements builds the renderer with the demo collaborators.
func (app *application) elements(data *demoData) (*elements.Elements, error) {
	translator, err := app.translator()
	if err != nil {
		return nil, err
	}
	mode := elements.ModeLenient
	if app.config.GetBool(keyStrict) {
		mode = elements.ModeStrict
	}
	opts := []elements.Option{
		elements.WithLogger(app.logger),
		elements.WithMode(mode),
		elements.WithNumberCeiling(app.config.GetInt(keyNumberCeiling)),
		elements.WithStatusSource(data),
		elements.WithTermSource(data),
	}
	if translator != nil {
		opts = append(opts, elements.WithTranslator(translator, app.config.GetString(keyLocale)))
	}
	if app.now != nil {
		opts = append(opts, elements.WithClock(app.now))
	}
	return elements.New(opts...), nil
}
