package app

import (
	"context"
	"fmt"

	"skillcal_backend/internal/catalog"
	"skillcal_backend/internal/config"
)

// LoadBank 按存储配置加载题库：minio 对象、本地文件或内置题库
func LoadBank(ctx context.Context, cfg *config.StorageConfig) (*catalog.Bank, error) {
	switch {
	case cfg.Type == "minio":
		client, err := catalog.NewMinioClient(catalog.ObjectSource{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessID,
			SecretKey: cfg.MinioSecret,
			Bucket:    cfg.MinioBucket,
			Object:    cfg.MinioObject,
			UseSSL:    cfg.MinioUseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("minio client: %w", err)
		}
		return catalog.LoadObject(ctx, client, cfg.MinioBucket, cfg.MinioObject)
	case cfg.BankPath != "":
		return catalog.LoadFile(cfg.BankPath)
	default:
		return catalog.Default()
	}
}
