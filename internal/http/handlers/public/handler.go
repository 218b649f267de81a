package public

import "github.com/farmket-server/internal/provider"

// Handler 前台/公开接口处理器入口
// 说明：该处理器仅用于买家侧只读 API，不做写操作。
type Handler struct {
	*provider.Container
}

// New 创建前台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
