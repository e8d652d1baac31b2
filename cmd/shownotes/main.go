package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"shownotes/internal/catalog"
	"shownotes/internal/config"
	"shownotes/internal/domain"
	"shownotes/internal/logger"
	"shownotes/internal/pipeline"
	"shownotes/internal/store"
	"shownotes/internal/summarize"
)

const usage = `Usage: shownotes [-config config.yaml] <command>

Commands:
  list      [-by-date]                       list available transcripts
  generate  -file NAME | -text TEXT          generate headline/summary/keywords
            [-save] [-image NAME] [-out FILE] [-docx FILE]
  show      PATTERN                          list saved records for a show feed
                                             (e.g. Newstalk_Breakfast, Pat_Kenny,
                                              Hard_Shoulder, Lunchtime_Live)
  edit      -file NAME -headline H -summary S -keywords "a, b" [-image NAME]
  init-db                                    create the summaries table
`

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	// Secrets come from the environment; .env is a convenience for dev.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	resolveEnv(cfg)

	log := logger.New(cfg.Logging.Level)
	ctx := context.Background()

	a := &app{cfg: cfg, log: log}

	var cmdErr error
	switch cmd := flag.Arg(0); cmd {
	case "list":
		cmdErr = a.list(ctx, flag.Args()[1:])
	case "generate":
		cmdErr = a.generate(ctx, flag.Args()[1:])
	case "show":
		cmdErr = a.show(ctx, flag.Args()[1:])
	case "edit":
		cmdErr = a.edit(ctx, flag.Args()[1:])
	case "init-db":
		cmdErr = a.initDB(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q\n\n", cmd)
		flag.Usage()
		os.Exit(2)
	}

	if cmdErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cmdErr)
		os.Exit(1)
	}
}

func resolveEnv(cfg *config.Config) {
	switch cfg.Summarizer.Provider {
	case "gemini":
		cfg.Summarizer.APIKey = os.Getenv("GEMINI_API_KEY")
	default:
		cfg.Summarizer.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = os.Getenv("DATABASE_URL")
	}
}

type app struct {
	cfg *config.Config
	log logger.Logger
}

// openStore connects to Postgres. The caller owns the returned close func.
func (a *app) openStore(ctx context.Context) (store.Repository, func(), error) {
	client := store.NewClient(a.cfg.Database)
	if err := client.Connect(ctx); err != nil {
		return nil, nil, fmt.Errorf("connect to store: %w", err)
	}
	repo := store.NewRepository(client.DB(), a.log)
	return repo, func() { _ = client.Close() }, nil
}

func (a *app) list(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	byDate := fs.Bool("by-date", false, "newest transcript first")
	_ = fs.Parse(args)

	cat := catalog.New(a.cfg.Paths.Transcripts, a.log)
	names, err := cat.List(ctx, *byDate)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func (a *app) generate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	file := fs.String("file", "", "transcript name from list")
	text := fs.String("text", "", "literal transcript text (manual paste path)")
	save := fs.Bool("save", false, "persist the result")
	image := fs.String("image", "", "cover image filename to store with -save")
	out := fs.String("out", "", "write the text export to this file")
	docxOut := fs.String("docx", "", "write a docx export to this file")
	_ = fs.Parse(args)

	if (*file == "") == (*text == "") {
		return fmt.Errorf("exactly one of -file or -text is required")
	}

	engine, err := summarize.New(a.cfg.Summarizer, a.log)
	if err != nil {
		return err
	}

	// The repository is optional context for generation; only -save and
	// style hints need it.
	var repo store.Repository
	if a.cfg.Database.DSN != "" {
		r, closeStore, err := a.openStore(ctx)
		if err != nil {
			a.log.Warn(ctx, "Store unavailable, generating without style hints: %v", err)
		} else {
			repo = r
			defer closeStore()
		}
	}

	cat := catalog.New(a.cfg.Paths.Transcripts, a.log)
	orch := pipeline.New(cat, engine, repo, a.log)

	var res pipeline.Result
	if *file != "" {
		res, err = orch.GenerateByName(ctx, *file)
	} else {
		res, err = orch.Generate(ctx, *text)
	}
	if err != nil {
		return err
	}

	doc := orch.ExportText(res)
	fmt.Print(doc)

	if *out != "" {
		if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
		if err := os.WriteFile(*out, []byte(doc), 0644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		a.log.Info(ctx, "Wrote %s", *out)
	}
	if *docxOut != "" {
		title := *file
		if title == "" {
			title = "Generated summary"
		}
		if err := orch.ExportDocx(res, title, *docxOut); err != nil {
			return fmt.Errorf("write docx export: %w", err)
		}
		a.log.Info(ctx, "Wrote %s", *docxOut)
	}

	if *save {
		if *file == "" {
			return fmt.Errorf("-save requires -file (records are keyed by transcript filename)")
		}
		var imageName *string
		if *image != "" {
			imageName = image
		}
		if err := orch.Persist(ctx, *file, res, imageName); err != nil {
			return err
		}
		a.log.Info(ctx, "Saved summary record for %s", *file)
	}

	return nil
}

func (a *app) show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("show requires a pattern, one of: %s", strings.Join(domain.Shows, ", "))
	}

	repo, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	records := repo.FindByShow(ctx, args[0])
	if len(records) == 0 {
		fmt.Println("No records found")
		return nil
	}

	for _, rec := range records {
		image := "-"
		if rec.ImageFilename != nil {
			image = *rec.ImageFilename
		}
		fmt.Printf("%s | %s | %s | image: %s\n", rec.CreatedAtDisplay(), rec.Filename, rec.Headline, image)
	}
	return nil
}

func (a *app) edit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	file := fs.String("file", "", "record filename")
	headline := fs.String("headline", "", "new headline")
	summary := fs.String("summary", "", "new summary")
	keywords := fs.String("keywords", "", "comma-separated keywords")
	image := fs.String("image", "", "new cover image filename")
	_ = fs.Parse(args)

	if *file == "" {
		return fmt.Errorf("edit requires -file")
	}

	repo, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	// Show the record as it stands before overwriting it.
	current, err := repo.FindByFilename(ctx, *file)
	if err != nil {
		return err
	}
	currentImage := "-"
	if current.ImageFilename != nil {
		currentImage = *current.ImageFilename
	}
	fmt.Printf("Editing %s (created %s)\n", current.Filename, current.CreatedAtDisplay())
	fmt.Printf("  headline: %s\n  keywords: %s\n  image:    %s\n",
		current.Headline, strings.Join(current.Keywords, ", "), currentImage)

	// Image lineage follows the record it belongs to.
	var imageName *string
	if *image != "" {
		named := *file + "_" + filepath.Base(*image)
		imageName = &named
	}

	// Manual keywords are stored as typed, not re-extracted.
	var kws []string
	for _, k := range strings.Split(*keywords, ",") {
		if k = strings.TrimSpace(k); k != "" {
			kws = append(kws, k)
		}
	}

	return repo.UpdateEdit(ctx, *file, *headline, *summary, kws, imageName)
}

func (a *app) initDB(ctx context.Context) error {
	client := store.NewClient(a.cfg.Database)
	if err := client.Connect(ctx); err != nil {
		return fmt.Errorf("connect to store: %w", err)
	}
	defer client.Close()

	if err := store.EnsureSchema(ctx, client); err != nil {
		return err
	}
	a.log.Info(ctx, "summaries table ready")
	return nil
}
