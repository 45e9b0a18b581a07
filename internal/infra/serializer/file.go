package serializer

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"hotel-guest-manager/internal/domain/guest"
	"hotel-guest-manager/internal/infra"
	"hotel-guest-manager/internal/infra/serializer/converter"
	"hotel-guest-manager/internal/infra/serializer/record"
	"hotel-guest-manager/internal/pkg/clock"
	"hotel-guest-manager/internal/pkg/config"

	"github.com/google/uuid"
)

const filePerm = 0o644

// FileSerializer persists the whole guest collection to a single file.
// Writes go to a sibling temp file that is renamed over the target, so a failed write
// never touches the previously saved file.
type FileSerializer struct {
	path   string
	codec  Codec
	clock  clock.Clock
	logger *slog.Logger
}

func NewFileSerializer(cfg config.StorageConfig, clk clock.Clock, logger *slog.Logger) (*FileSerializer, error) {
	codec, err := CodecFor(cfg.Format, cfg.Path)
	if err != nil {
		return nil, err
	}
	return NewFileSerializerWithCodec(cfg.Path, codec, clk, logger), nil
}

func NewFileSerializerWithCodec(path string, codec Codec, clk clock.Clock, logger *slog.Logger) *FileSerializer {
	return &FileSerializer{
		path:   path,
		codec:  codec,
		clock:  clk,
		logger: logger,
	}
}

func (s *FileSerializer) Path() string   { return s.path }
func (s *FileSerializer) Format() string { return s.codec.Name() }

func (s *FileSerializer) Read(ctx context.Context) ([]*guest.Guest, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapPersistenceErr(s.logger, infra.KindIO, "read canceled", err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, infra.WrapPersistenceErr(s.logger, infra.KindIO, "failed to read "+s.path, err)
	}

	var doc record.Document
	if err := s.codec.Unmarshal(data, &doc); err != nil {
		return nil, infra.WrapPersistenceErr(s.logger, infra.KindDecode, "failed to decode "+s.codec.Name(), err)
	}

	guests, err := converter.DocumentToGuests(doc)
	if err != nil {
		return nil, infra.WrapPersistenceErr(s.logger, infra.KindDecode, "failed to rebuild guests", err)
	}

	s.logger.Debug("guests read",
		slog.String("path", s.path),
		slog.Int("count", len(guests)),
		slog.Time("saved_at", doc.SavedAt),
	)
	return guests, nil
}

func (s *FileSerializer) Write(ctx context.Context, guests []*guest.Guest) error {
	if err := ctx.Err(); err != nil {
		return infra.WrapPersistenceErr(s.logger, infra.KindIO, "write canceled", err)
	}

	doc := converter.GuestsToDocument(guests)
	doc.SavedAt = s.clock.Now()

	data, err := s.codec.Marshal(doc)
	if err != nil {
		return infra.WrapPersistenceErr(s.logger, infra.KindEncode, "failed to encode "+s.codec.Name(), err)
	}

	if err := s.replaceFile(data); err != nil {
		return infra.WrapPersistenceErr(s.logger, infra.KindIO, "failed to write "+s.path, err)
	}

	s.logger.Debug("guests written", slog.String("path", s.path), slog.Int("count", len(guests)))
	return nil
}

func (s *FileSerializer) replaceFile(data []byte) (err error) {
	dir, base := filepath.Split(s.path)
	if dir == "" {
		dir = "."
	}
	tmpPath := filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, s.path)
}
