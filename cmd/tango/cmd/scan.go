package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/tangocli/tango/internal/config"
	"github.com/tangocli/tango/internal/extract"
	"github.com/tangocli/tango/internal/imageprep"
	"github.com/tangocli/tango/internal/ocr"
	"github.com/tangocli/tango/internal/store"
	"github.com/tangocli/tango/internal/vocab"
)

var (
	scanDryRun     bool
	scanUpscale    int
	scanRotate     int
	scanSinglePass bool
	scanShowText   bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <image...>",
	Short: "Extract vocabulary entries from workbook page photos",
	Long: `Scan photographs of vocabulary workbook pages. Each image is
preprocessed (grayscale, upscale), recognized with tesseract, and the
recognized text is segmented into vocabulary entries.

Extracted entries are saved to the collection; entries whose headword
already exists are skipped. Use --dry-run to preview without saving.

Example:
  tango scan page1.jpg page2.jpg
  tango scan --rotate 1 --dry-run sideways.jpg`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanDryRun, "dry-run", false, "show extracted entries without saving")
	scanCmd.Flags().IntVar(&scanUpscale, "upscale", 2, "image upscale factor before recognition")
	scanCmd.Flags().IntVar(&scanRotate, "rotate", 0, "quarter turns clockwise before recognition (0-3)")
	scanCmd.Flags().BoolVar(&scanSinglePass, "single-pass", false, "run only the mixed-language recognition pass")
	scanCmd.Flags().BoolVar(&scanShowText, "show-text", false, "print the raw recognized text")

	rootCmd.AddCommand(scanCmd)
}

// enginePools hands out recognition engines grouped by language set, so
// concurrent page scans share a bounded number of tesseract processes.
type enginePools struct {
	command string
	workers int

	mu    sync.Mutex
	pools map[string]*ocr.Pool
}

func newEnginePools(cfg *config.OCRConfig) *enginePools {
	return &enginePools{
		command: cfg.Command,
		workers: cfg.Workers,
		pools:   make(map[string]*ocr.Pool),
	}
}

func (p *enginePools) engine(languages []string) ocr.Engine {
	key := strings.Join(languages, "+")

	p.mu.Lock()
	pool, ok := p.pools[key]
	if !ok {
		langs := append([]string(nil), languages...)
		pool = ocr.NewPool(p.workers, func() ocr.Engine {
			return ocr.NewTesseract(p.command, langs...)
		})
		p.pools[key] = pool
	}
	p.mu.Unlock()

	return ocr.EngineFunc(func(ctx context.Context, imagePath string, onProgress ocr.Progress) (string, error) {
		e, err := pool.Acquire(ctx)
		if err != nil {
			return "", err
		}
		defer pool.Release(e)
		return e.Recognize(ctx, imagePath, onProgress)
	})
}

func (p *enginePools) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, pool := range p.pools {
		pool.Close()
	}
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadUserConfig()
	if err != nil {
		return err
	}

	tess := ocr.NewTesseract(cfg.OCR.Command)
	if !tess.Available() {
		return fmt.Errorf("%s not found on PATH; install tesseract-ocr with jpn and eng language data", cfg.OCR.Command)
	}

	passes := ocr.DefaultPasses()
	if scanSinglePass || cfg.OCR.SinglePass {
		passes = []ocr.Pass{{Name: "mixed", Languages: cfg.OCR.Languages}}
	}

	pools := newEnginePools(&cfg.OCR)
	defer pools.Close()

	tmpDir, err := os.MkdirTemp("", "tango-scan-*")
	if err != nil {
		return fmt.Errorf("creating temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	ctx := cmd.Context()

	type pageResult struct {
		path string
		text string
		err  error
	}
	results := make([]pageResult, len(args))

	var wg sync.WaitGroup
	for i, path := range args {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			text, err := recognizePage(ctx, pools, tmpDir, path, passes)
			results[i] = pageResult{path: path, text: text, err: err}
		}(i, path)
	}
	wg.Wait()

	var candidates []vocab.Candidate
	for _, res := range results {
		if res.err != nil {
			return fmt.Errorf("scanning %s: %w", res.path, res.err)
		}
		if scanShowText {
			fmt.Printf("--- %s ---\n%s\n", res.path, res.text)
		}
		found := extract.Extract(res.text)
		fmt.Printf("%s: %d entries\n", res.path, len(found))
		candidates = append(candidates, found...)
	}

	if scanDryRun {
		printCandidates(candidates)
		return nil
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	return saveCandidates(ctx, st, candidates)
}

// recognizePage preprocesses one image and runs the recognition passes
// over the prepared copy.
func recognizePage(ctx context.Context, pools *enginePools, tmpDir, path string, passes []ocr.Pass) (string, error) {
	img, err := imageprep.Load(path)
	if err != nil {
		return "", err
	}

	for i := 0; i < scanRotate%4; i++ {
		img = imageprep.Rotate90(img)
	}
	prepared := imageprep.Prepare(img, scanUpscale)

	preparedPath := filepath.Join(tmpDir, filepath.Base(path)+".png")
	if err := imageprep.SavePNG(preparedPath, prepared); err != nil {
		return "", err
	}

	return ocr.MultiPass(ctx, pools.engine, preparedPath, passes, nil)
}

func printCandidates(candidates []vocab.Candidate) {
	for _, c := range candidates {
		line := c.WordDisplay
		if line == "" {
			line = c.Word
		}
		if c.Phonetic != "" {
			line += " [" + c.Phonetic + "]"
		}
		if c.POS != "" {
			line += " " + c.POS
		}
		if c.Meaning != "" {
			line += "  " + c.Meaning
		}
		fmt.Println("  " + line)
	}
}

// saveCandidates persists candidates, skipping headwords that already
// exist in the collection.
func saveCandidates(ctx context.Context, st *store.Store, candidates []vocab.Candidate) error {
	var created, skipped int
	for _, c := range candidates {
		e := vocab.NewEntry(c)
		err := st.Insert(ctx, &e)
		switch {
		case errors.Is(err, store.ErrExists):
			fmt.Printf("  skipped %s (already in collection)\n", e.Word)
			skipped++
		case err != nil:
			return fmt.Errorf("saving %s: %w", e.Word, err)
		default:
			created++
		}
	}
	fmt.Printf("Saved %d entries, skipped %d.\n", created, skipped)
	return nil
}
