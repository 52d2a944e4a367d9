package redis_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	domain "github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/cache"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const draftKey = "order_draft:current"

// 草稿保留時間，超過視同放棄
const draftTTL = 24 * time.Hour

// DraftRepo 單一槽位的草稿快取，草稿本體以JSON blob存放
// 草稿只是快取，記憶體內的聚合才是事實來源
type DraftRepo struct {
	draftCache cache.Cache
	logger     zerolog.Logger
}

func NewDraftRepo(draftCache cache.Cache, logger zerolog.Logger) *DraftRepo {
	return &DraftRepo{
		draftCache: draftCache,
		logger:     logger,
	}
}

// Load 取出上次persist的草稿
// 槽位不存在、資料毀損或redis連不上都視為「沒有草稿」，回傳空草稿
// 草稿遺失不能擋住服務啟動
func (r *DraftRepo) Load(ctx context.Context) (*domain.OrderDraft, error) {
	raw, err := r.draftCache.Get(ctx, draftKey)
	if errors.Is(err, redis.Nil) {
		return domain.NewOrderDraft(), nil
	}
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to load order draft, starting empty")
		return domain.NewOrderDraft(), nil
	}

	rawStr, ok := raw.(string)
	if !ok {
		return domain.NewOrderDraft(), nil
	}

	var draft domain.OrderDraft
	if err := json.Unmarshal([]byte(rawStr), &draft); err != nil {
		// 毀損的草稿當作沒有草稿
		return domain.NewOrderDraft(), nil
	}
	if draft.Orders == nil {
		draft.Orders = []domain.CustomerOrder{}
	}
	return &draft, nil
}

// Save 序列化後整包覆寫
func (r *DraftRepo) Save(ctx context.Context, draft *domain.OrderDraft) error {
	draftJSON, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	if err := r.draftCache.Set(ctx, draftKey, draftJSON, draftTTL); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// Clear 刪除槽位
func (r *DraftRepo) Clear(ctx context.Context) error {
	if err := r.draftCache.Delete(ctx, draftKey); err != nil {
		return fmt.Errorf("failed to clear draft: %w", err)
	}
	return nil
}
