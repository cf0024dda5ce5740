package preview

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
)

// Provider fetches the raw bytes of a workbook by document id.
// Implementations report a missing document with *NotFoundError and other
// failures with *TransientError; any other error is treated as transient.
type Provider interface {
	Fetch(ctx context.Context, documentID string) ([]byte, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, documentID string) ([]byte, error)

// Fetch calls fn.
func (fn ProviderFunc) Fetch(ctx context.Context, documentID string) ([]byte, error) {
	return fn(ctx, documentID)
}

// documentIDRe restricts ids to a single safe path element.
var documentIDRe = regexp.MustCompile(`^[A-Za-z0-9_-][A-Za-z0-9._-]*$`)

// DirProvider serves workbooks stored as <Root>/<documentID><Ext>.
type DirProvider struct {
	Root string
	// Ext defaults to ".xlsx".
	Ext string
}

// Fetch reads the workbook file for documentID.
func (p DirProvider) Fetch(ctx context.Context, documentID string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !documentIDRe.MatchString(documentID) {
		return nil, &NotFoundError{DocumentID: documentID, Err: fmt.Errorf("invalid document id")}
	}
	ext := p.Ext
	if ext == "" {
		ext = ".xlsx"
	}

	data, err := os.ReadFile(filepath.Join(p.Root, documentID+ext))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{DocumentID: documentID, Err: err}
		}
		return nil, &TransientError{DocumentID: documentID, Err: err}
	}
	return data, nil
}
