package preview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetpreview-go/pkg/preview/cache"
	"github.com/ukaji3/sheetpreview-go/pkg/preview/models"
	"github.com/ukaji3/sheetpreview-go/pkg/preview/parser"
)

// CacheStatus tells whether a preview was served from the cache.
type CacheStatus string

const (
	CacheHit  CacheStatus = "HIT"
	CacheMiss CacheStatus = "MISS"
)

// defaultSheetKey stands for "first worksheet" in cache keys. Named sheets
// are always quoted, so it cannot collide with a real sheet name.
const defaultSheetKey = "-"

// Request identifies a preview.
type Request struct {
	DocumentID string
	// SheetName selects a worksheet; empty means the first one.
	SheetName string
	// MaxRows and MaxCols bound the rendered window; zero means the default.
	MaxRows int
	MaxCols int
}

// Response is a rendered preview and where it came from.
type Response struct {
	Result      models.PreviewResult
	CacheStatus CacheStatus
}

// Service renders previews and fronts the renderer with a cache.
type Service struct {
	provider Provider
	cache    *cache.Cache
	opts     Options
	log      *slog.Logger
}

// NewService creates a Service. The cache is shared by all requests served
// by the returned Service.
func NewService(provider Provider, c *cache.Cache, opts Options) *Service {
	if opts.DefaultRows <= 0 {
		opts.DefaultRows = DefaultMaxRows
	}
	if opts.DefaultCols <= 0 {
		opts.DefaultCols = DefaultMaxCols
	}
	if c == nil {
		c = cache.New(cache.Options{})
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		provider: provider,
		cache:    c,
		opts:     opts,
		log:      logger,
	}
}

// CacheKey builds the cache key for a preview. Equal inputs give equal keys
// and distinct inputs never collide.
func CacheKey(documentID, sheetName string, maxRows, maxCols int) string {
	sheet := defaultSheetKey
	if sheetName != "" {
		sheet = strconv.Quote(sheetName)
	}
	var b strings.Builder
	b.WriteString("preview:")
	b.WriteString(strconv.Quote(documentID))
	b.WriteByte(':')
	b.WriteString(sheet)
	fmt.Fprintf(&b, ":%d:%d", maxRows, maxCols)
	return b.String()
}

// CacheStats returns a snapshot of the preview cache counters.
func (s *Service) CacheStats() cache.Stats {
	return s.cache.Stats()
}

// Preview returns the preview for req, rendering it on a cache miss.
// Nothing is cached unless the render fully succeeds and ctx is still live.
func (s *Service) Preview(ctx context.Context, req Request) (Response, error) {
	if req.DocumentID == "" {
		return Response{}, fmt.Errorf("%w: missing document id", ErrInvalidRequest)
	}
	if req.MaxRows < 0 || req.MaxCols < 0 {
		return Response{}, fmt.Errorf("%w: negative limits %dx%d", ErrInvalidRequest, req.MaxRows, req.MaxCols)
	}
	rows, cols := s.opts.resolveLimits(req.MaxRows, req.MaxCols)
	key := CacheKey(req.DocumentID, req.SheetName, rows, cols)

	if result, ok := s.cache.Get(key); ok {
		s.log.Debug("preview cache hit", "document", req.DocumentID, "sheet", req.SheetName)
		return Response{Result: result, CacheStatus: CacheHit}, nil
	}

	data, err := s.provider.Fetch(ctx, req.DocumentID)
	if err != nil {
		err = classifyFetchError(req.DocumentID, err)
		s.log.Warn("fetching workbook failed", "document", req.DocumentID, "error", err)
		return Response{}, err
	}

	result, err := s.render(ctx, req.DocumentID, req.SheetName, data, parser.Limits{MaxRows: rows, MaxCols: cols})
	if err != nil {
		s.log.Warn("rendering preview failed", "document", req.DocumentID, "sheet", req.SheetName, "error", err)
		return Response{}, err
	}

	// The caller is gone: drop the result instead of caching it.
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	if !s.cache.Set(key, result) {
		s.log.Debug("preview too large to cache", "document", req.DocumentID, "bytes", result.SizeBytes())
	}
	s.log.Debug("preview cache miss", "document", req.DocumentID, "sheet", result.Metadata.SheetName,
		"cells", result.CellCount, "bytes", result.SizeBytes())

	return Response{Result: result, CacheStatus: CacheMiss}, nil
}

func (s *Service) render(ctx context.Context, documentID, sheetName string, data []byte, limits parser.Limits) (models.PreviewResult, error) {
	wb, err := parser.OpenWorkbook(bytes.NewReader(data))
	if err != nil {
		return models.PreviewResult{}, &RenderError{DocumentID: documentID, SheetName: sheetName, Err: err}
	}
	defer wb.Close()

	fm := parser.NewFormatter(parser.FormatOptions{
		Locale:     s.opts.Locale,
		DateLayout: s.opts.DateLayout,
		Date1904:   wb.Date1904(),
	})
	grid, err := parser.RenderGrid(ctx, wb, sheetName, limits, fm)
	if err != nil {
		switch {
		case errors.Is(err, parser.ErrSheetNotFound):
			return models.PreviewResult{}, &NotFoundError{DocumentID: documentID, SheetName: sheetName, Err: err}
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return models.PreviewResult{}, err
		default:
			return models.PreviewResult{}, &RenderError{DocumentID: documentID, SheetName: sheetName, Err: err}
		}
	}

	md := parser.ExtractMetadata(wb)
	md.SheetName = grid.SheetName
	md.Dimension = grid.Dimension

	return models.PreviewResult{
		HTML:        grid.HTML,
		Metadata:    md,
		CellCount:   grid.CellCount,
		HasFormulas: grid.HasFormulas,
		Truncated:   grid.Truncated,
	}, nil
}

// classifyFetchError keeps provider errors that already carry a kind and
// treats everything else as transient.
func classifyFetchError(documentID string, err error) error {
	var nf *NotFoundError
	var te *TransientError
	switch {
	case errors.As(err, &nf), errors.As(err, &te):
		return err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return &TransientError{DocumentID: documentID, Err: err}
	}
}
