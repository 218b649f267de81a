package cache

import (
	"context"
	"strings"
	"time"
)

// 配置未给出 TTL 时的兜底值
const defaultProductDetailTTL = 5 * time.Minute

// ProductDetailKey 商品详情缓存键
func ProductDetailKey(slug string) string {
	return "catalog:product:" + slug
}

// GetProductDetail 读取商品详情缓存
func GetProductDetail(ctx context.Context, slug string, dest interface{}) (bool, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return false, nil
	}
	return GetJSON(ctx, ProductDetailKey(slug), dest)
}

// SetProductDetail 写入商品详情缓存
func SetProductDetail(ctx context.Context, slug string, value interface{}, ttl time.Duration) error {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = defaultProductDetailTTL
	}
	return SetJSON(ctx, ProductDetailKey(slug), value, ttl)
}

// DelProductDetail 删除一个或多个商品详情缓存
// 商品改名、改 slug、删除时由后台写入口调用。
func DelProductDetail(ctx context.Context, slugs ...string) error {
	for _, slug := range slugs {
		slug = strings.TrimSpace(slug)
		if slug == "" {
			continue
		}
		if err := Del(ctx, ProductDetailKey(slug)); err != nil {
			return err
		}
	}
	return nil
}
