package export

import (
	"context"
	"errors"

	domain "github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/rs/zerolog"
)

var (
	// 分享管道不存在（例如裝置沒有分享功能），不算錯誤
	ErrShareUnavailable = errors.New("sharing is not available")
	// 使用者取消分享，不算錯誤
	ErrShareCancelled = errors.New("share was cancelled")
)

// SnapshotRenderer 由呈現層實作，回傳渲染好的圖檔handle
type SnapshotRenderer interface {
	RenderSnapshot(ctx context.Context) (string, error)
}

// Sharer 外部分享服務
type Sharer interface {
	ShareFile(ctx context.Context, path string) error
	ShareText(ctx context.Context, text string) error
}

// Exporter 協調渲染與分享，本身不碰畫面
type Exporter struct {
	renderer SnapshotRenderer
	sharer   Sharer
	logger   zerolog.Logger
}

func NewExporter(renderer SnapshotRenderer, sharer Sharer, logger zerolog.Logger) *Exporter {
	return &Exporter{
		renderer: renderer,
		sharer:   sharer,
		logger:   logger,
	}
}

// 分享取消與不可用都是正常結束
func squashShareOutcome(err error) error {
	if errors.Is(err, ErrShareUnavailable) || errors.Is(err, ErrShareCancelled) {
		return nil
	}
	return err
}

// ExportSnapshot 請呈現層渲染快照，再交給分享服務
func (e *Exporter) ExportSnapshot(ctx context.Context) error {
	path, err := e.renderer.RenderSnapshot(ctx)
	if err != nil {
		return squashShareOutcome(err)
	}

	if err := e.sharer.ShareFile(ctx, path); err != nil {
		return squashShareOutcome(err)
	}
	return nil
}

// ShareSummary 以純文字摘要作為分享內容
func (e *Exporter) ShareSummary(ctx context.Context, draft *domain.OrderDraft) error {
	text := FormatText(draft)
	if err := e.sharer.ShareText(ctx, text); err != nil {
		return squashShareOutcome(err)
	}
	return nil
}

// NopRenderer 沒有接呈現層時的預設實作
type NopRenderer struct{}

func (NopRenderer) RenderSnapshot(ctx context.Context) (string, error) {
	return "", ErrShareUnavailable
}

// NopSharer 沒有接分享服務時的預設實作
type NopSharer struct{}

func (NopSharer) ShareFile(ctx context.Context, path string) error {
	return ErrShareUnavailable
}

func (NopSharer) ShareText(ctx context.Context, text string) error {
	return ErrShareUnavailable
}
