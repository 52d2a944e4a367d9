package export

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	path string
	err  error
}

func (r *fakeRenderer) RenderSnapshot(ctx context.Context) (string, error) {
	return r.path, r.err
}

type fakeSharer struct {
	fileErr    error
	textErr    error
	sharedPath string
	sharedText string
}

func (s *fakeSharer) ShareFile(ctx context.Context, path string) error {
	s.sharedPath = path
	return s.fileErr
}

func (s *fakeSharer) ShareText(ctx context.Context, text string) error {
	s.sharedText = text
	return s.textErr
}

func TestExporter_ExportSnapshot(t *testing.T) {
	renderer := &fakeRenderer{path: "/tmp/snapshot.png"}
	sharer := &fakeSharer{}
	exporter := NewExporter(renderer, sharer, zerolog.Nop())

	err := exporter.ExportSnapshot(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/tmp/snapshot.png", sharer.sharedPath)
}

func TestExporter_ExportSnapshot_Cancelled(t *testing.T) {
	// 使用者取消分享是正常結束，不回傳錯誤
	renderer := &fakeRenderer{path: "/tmp/snapshot.png"}
	sharer := &fakeSharer{fileErr: ErrShareCancelled}
	exporter := NewExporter(renderer, sharer, zerolog.Nop())

	require.NoError(t, exporter.ExportSnapshot(context.Background()))
}

func TestExporter_ExportSnapshot_Unavailable(t *testing.T) {
	exporter := NewExporter(NopRenderer{}, NopSharer{}, zerolog.Nop())
	require.NoError(t, exporter.ExportSnapshot(context.Background()))
}

func TestExporter_ExportSnapshot_RenderFailure(t *testing.T) {
	renderErr := errors.New("render failed")
	renderer := &fakeRenderer{err: renderErr}
	sharer := &fakeSharer{}
	exporter := NewExporter(renderer, sharer, zerolog.Nop())

	err := exporter.ExportSnapshot(context.Background())
	require.ErrorIs(t, err, renderErr)
	require.Empty(t, sharer.sharedPath)
}

func TestExporter_ShareSummary(t *testing.T) {
	draft := buildTestDraft(t)
	sharer := &fakeSharer{}
	exporter := NewExporter(NopRenderer{}, sharer, zerolog.Nop())

	require.NoError(t, exporter.ShareSummary(context.Background(), draft))
	require.Contains(t, sharer.sharedText, "Pedidos del Día")
	require.Contains(t, sharer.sharedText, "Total: $ 3.200")
}

func TestExporter_ShareSummary_Cancelled(t *testing.T) {
	draft := buildTestDraft(t)
	sharer := &fakeSharer{textErr: ErrShareCancelled}
	exporter := NewExporter(NopRenderer{}, sharer, zerolog.Nop())

	require.NoError(t, exporter.ShareSummary(context.Background(), draft))
}

func TestExporter_ShareSummary_Failure(t *testing.T) {
	draft := buildTestDraft(t)
	shareErr := errors.New("share transport broken")
	sharer := &fakeSharer{textErr: shareErr}
	exporter := NewExporter(NopRenderer{}, sharer, zerolog.Nop())

	require.ErrorIs(t, exporter.ShareSummary(context.Background(), draft), shareErr)
}
