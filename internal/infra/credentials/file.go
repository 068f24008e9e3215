package credentials

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"campaignhub/internal/storage"
)

// FileTokens keeps the access token in a file under the user's dashboard
// directory. It is the default for single-user installs.
type FileTokens struct {
	files *storage.FileStore
	key   string
}

// NewFileTokens returns a token store backed by files.
func NewFileTokens(files *storage.FileStore) *FileTokens {
	return &FileTokens{files: files, key: AccessToken}
}

func (f *FileTokens) Token(ctx context.Context) (string, error) {
	data, err := f.files.Read(ctx, f.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("credentials: load token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (f *FileTokens) SetToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}
	if _, err := f.files.Write(ctx, f.key, []byte(token)); err != nil {
		return fmt.Errorf("credentials: save token: %w", err)
	}
	return nil
}

func (f *FileTokens) ClearToken(ctx context.Context) error {
	if err := f.files.Delete(ctx, f.key); err != nil {
		return fmt.Errorf("credentials: clear token: %w", err)
	}
	return nil
}
