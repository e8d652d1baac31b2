package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"shownotes/internal/domain"
	"shownotes/internal/logger"
	"shownotes/internal/store"
)

type fakeCatalog struct {
	transcripts map[string]string
}

func (f *fakeCatalog) List(ctx context.Context, byRecency bool) ([]string, error) {
	var names []string
	for name := range f.transcripts {
		names = append(names, name)
	}
	return names, nil
}

func (f *fakeCatalog) Read(ctx context.Context, name string) (string, error) {
	text, ok := f.transcripts[name]
	if !ok {
		return "", domain.ErrNotFound
	}
	return text, nil
}

type fakeEngine struct {
	summary string
	err     error
	calls   int
}

func (f *fakeEngine) Summarize(ctx context.Context, transcript string, repo store.Repository) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.summary, nil
}

type fakeRepo struct {
	records []store.SummaryRecord
	upserts []upsertCall
}

type upsertCall struct {
	filename string
	headline string
	image    *string
}

func (f *fakeRepo) FindByShow(ctx context.Context, pattern string) []store.SummaryRecord {
	var out []store.SummaryRecord
	for _, rec := range f.records {
		if strings.Contains(rec.Filename, pattern) {
			out = append(out, rec)
		}
	}
	return out
}

func (f *fakeRepo) FindByFilename(ctx context.Context, filename string) (store.SummaryRecord, error) {
	return store.SummaryRecord{}, domain.ErrNotFound
}

func (f *fakeRepo) Upsert(ctx context.Context, filename, headline, summary string, keywords []string, imageFilename *string) error {
	f.upserts = append(f.upserts, upsertCall{filename: filename, headline: headline, image: imageFilename})
	return nil
}

func (f *fakeRepo) UpdateEdit(ctx context.Context, filename, headline, summary string, keywords []string, imageFilename *string) error {
	return nil
}

func newTestOrchestrator(engine *fakeEngine, repo store.Repository) Orchestrator {
	cat := &fakeCatalog{transcripts: map[string]string{
		"Pat_Kenny_0810": "The Minister discussed housing targets in Dublin.",
	}}
	return New(cat, engine, repo, logger.New("error"))
}

func TestGenerate(t *testing.T) {
	engine := &fakeEngine{summary: "Minister defends housing targets. More detail followed."}
	o := newTestOrchestrator(engine, &fakeRepo{})

	res, err := o.Generate(context.Background(), "The Minister discussed housing targets in Dublin.")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if res.Summary != engine.summary {
		t.Errorf("Summary = %q", res.Summary)
	}
	if res.Headline != "Minister defends housing targets" {
		t.Errorf("Headline = %q", res.Headline)
	}
	if len(res.Keywords) == 0 {
		t.Error("Keywords empty")
	}
}

func TestGenerateEmptyTranscript(t *testing.T) {
	engine := &fakeEngine{summary: "x"}
	o := newTestOrchestrator(engine, &fakeRepo{})

	_, err := o.Generate(context.Background(), "  ")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Generate() error = %v, want ErrInvalidInput", err)
	}
	if engine.calls != 0 {
		t.Errorf("engine called %d times for empty transcript, want 0", engine.calls)
	}
}

func TestGenerateAbortsOnSummarizeFailure(t *testing.T) {
	engine := &fakeEngine{err: errors.New("backend down")}
	o := newTestOrchestrator(engine, &fakeRepo{})

	res, err := o.Generate(context.Background(), "some transcript")
	if err == nil {
		t.Fatal("Generate() expected error")
	}
	if res.Headline != "" || res.Summary != "" || len(res.Keywords) != 0 {
		t.Errorf("Generate() leaked partial result: %+v", res)
	}
}

func TestGenerateByName(t *testing.T) {
	engine := &fakeEngine{summary: "A summary of the housing segment."}
	o := newTestOrchestrator(engine, &fakeRepo{})

	if _, err := o.GenerateByName(context.Background(), "Pat_Kenny_0810"); err != nil {
		t.Fatalf("GenerateByName() error = %v", err)
	}

	_, err := o.GenerateByName(context.Background(), "no_such_transcript")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GenerateByName() error = %v, want ErrNotFound", err)
	}
	if engine.calls != 1 {
		t.Errorf("engine called %d times, want 1 (unknown name never reaches it)", engine.calls)
	}
}

func TestPersist(t *testing.T) {
	repo := &fakeRepo{}
	o := newTestOrchestrator(&fakeEngine{}, repo)

	res := Result{Headline: "H", Summary: "S", Keywords: []string{"a"}}
	img := "Pat_Kenny_0810_cover.jpg"

	if err := o.Persist(context.Background(), "Pat_Kenny_0810.mp3", res, &img); err != nil {
		t.Fatalf("Persist() error = %v", err)
	}
	if len(repo.upserts) != 1 {
		t.Fatalf("upserts = %d, want 1", len(repo.upserts))
	}
	if repo.upserts[0].image == nil || *repo.upserts[0].image != img {
		t.Error("image filename not passed through")
	}

	if err := o.Persist(context.Background(), "", res, nil); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Persist(\"\") error = %v, want ErrInvalidInput", err)
	}
}

func TestPersistWithoutRepo(t *testing.T) {
	o := newTestOrchestrator(&fakeEngine{}, nil)

	err := o.Persist(context.Background(), "f", Result{}, nil)
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Errorf("Persist() error = %v, want ErrStoreUnavailable", err)
	}
}

func TestFindForShow(t *testing.T) {
	repo := &fakeRepo{records: []store.SummaryRecord{
		{Filename: "Pat_Kenny_0810.mp3"},
		{Filename: "Hard_Shoulder_0810.mp3"},
	}}
	o := newTestOrchestrator(&fakeEngine{}, repo)

	got := o.FindForShow(context.Background(), "Pat_Kenny")
	if len(got) != 1 || got[0].Filename != "Pat_Kenny_0810.mp3" {
		t.Errorf("FindForShow() = %v", got)
	}
}

func TestExportText(t *testing.T) {
	o := newTestOrchestrator(&fakeEngine{}, nil)

	got := o.ExportText(Result{Headline: "H", Summary: "S", Keywords: []string{"a", "b"}})
	want := "Headline:\nH\n\nSummary:\nS\n\nKeywords:\na, b\n"
	if got != want {
		t.Errorf("ExportText() = %q, want %q", got, want)
	}
}

func TestExportTextEmptyResult(t *testing.T) {
	o := newTestOrchestrator(&fakeEngine{}, nil)

	got := o.ExportText(Result{})
	if !strings.Contains(got, "Headline:\n\n") {
		t.Errorf("ExportText() = %q, empty sections must still be labeled", got)
	}
}
