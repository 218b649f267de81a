package admin

import "github.com/farmket-server/internal/provider"

// Handler 后台管理接口处理器入口
// 说明：无鉴权的运营端 API，部署时应只暴露在内网。
type Handler struct {
	*provider.Container
}

// New 创建后台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
