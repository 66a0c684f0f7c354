package catalog

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectSource 描述存放题库文件的对象存储位置
type ObjectSource struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Object    string
	UseSSL    bool
}

func NewMinioClient(src ObjectSource) (*minio.Client, error) {
	return minio.New(src.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(src.AccessKey, src.SecretKey, ""),
		Secure: src.UseSSL,
	})
}

// LoadObject 从对象存储桶读取 YAML 题库
func LoadObject(ctx context.Context, client *minio.Client, bucket, object string) (*Bank, error) {
	obj, err := client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get bank object %s/%s: %w", bucket, object, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("read bank object %s/%s: %w", bucket, object, err)
	}
	return Load(data)
}
