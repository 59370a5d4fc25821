package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"orgdir/internal/domain"
	"orgdir/internal/eventbus"
)

// Format is the encoding of a record source
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// maxSourceSize bounds how much of a remote source is read
const maxSourceSize = 16 << 20

// ErrEmptyName is returned when a record has no name
var ErrEmptyName = errors.New("record has an empty name")

// tomlDocument is the top-level shape of a TOML source
type tomlDocument struct {
	Organizations []domain.OrganizationRecord `toml:"organizations"`
}

// Loader reads the record source once and announces the result on the bus
type Loader struct {
	bus     eventbus.EventBus
	logger  *zap.Logger
	client  *http.Client
	timeout time.Duration
}

// NewLoader creates a loader. A zero timeout means no deadline.
func NewLoader(bus eventbus.EventBus, logger *zap.Logger, timeout time.Duration) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		bus:     bus,
		logger:  logger.Named("loader"),
		client:  &http.Client{},
		timeout: timeout,
	}
}

// Start loads source and publishes DirectoryLoadedEvent or DirectoryLoadFailedEvent.
// There is no retry.
func (l *Loader) Start(ctx context.Context, source string) {
	records, err := l.Load(ctx, source)
	if err != nil {
		l.logger.Error("failed to load directory", zap.String("source", source), zap.Error(err))
		if l.bus != nil {
			l.bus.Publish(eventbus.DirectoryLoadFailedEvent{Source: source, Err: err})
		}
		return
	}

	l.logger.Info("directory loaded", zap.String("source", source), zap.Int("records", len(records)))
	if l.bus != nil {
		l.bus.Publish(eventbus.DirectoryLoadedEvent{Source: source, Records: records})
	}
}

// Load reads and decodes source, a file path or an http(s) URL
func (l *Loader) Load(ctx context.Context, source string) ([]domain.OrganizationRecord, error) {
	if source == "" {
		return nil, errors.New("no data source configured")
	}
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	var (
		data   []byte
		format Format
		err    error
	)
	if isURL(source) {
		data, format, err = l.fetch(ctx, source)
	} else {
		data, err = os.ReadFile(source)
		format = FormatFor(source, "")
	}
	if err != nil {
		return nil, err
	}

	records, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", source, err)
	}
	return records, nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, Format, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("failed to fetch %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSourceSize))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", url, err)
	}

	name := url
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	return data, FormatFor(path.Base(name), resp.Header.Get("Content-Type")), nil
}

// FormatFor picks a format from a file name, then from a content type, defaulting to JSON
func FormatFor(name, contentType string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".json", ".jsonc":
		return FormatJSON
	}

	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		switch {
		case strings.Contains(mediaType, "yaml"):
			return FormatYAML
		case strings.Contains(mediaType, "toml"):
			return FormatTOML
		}
	}
	return FormatJSON
}

// Decode parses a record document, strips terminal control sequences from
// every field and validates that every record is named
func Decode(data []byte, format Format) ([]domain.OrganizationRecord, error) {
	var records []domain.OrganizationRecord

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, err
		}
	case FormatTOML:
		var doc tomlDocument
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		records = doc.Organizations
	default:
		if err := json.Unmarshal(jsonc.ToJSON(data), &records); err != nil {
			return nil, err
		}
	}

	for i, r := range records {
		r = sanitize(r)
		records[i] = r
		if strings.TrimSpace(r.Name) == "" {
			return nil, fmt.Errorf("record %d: %w", i, ErrEmptyName)
		}
	}
	return records, nil
}

func isURL(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
