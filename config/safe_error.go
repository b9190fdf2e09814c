package config

// SafeErrorMessage 根据运行模式决定错误详情是否下发给客户端
// release 模式返回 fallback，避免把数据库驱动错误暴露给外部调用方
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}
