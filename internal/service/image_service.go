package service

import (
	"Amity/internal/api/config"
	"Amity/internal/pkg/consts"
	"Amity/internal/pkg/minio"
	"Amity/internal/pkg/util"
	"context"
	log "log/slog"
	"mime/multipart"
	"path"
	"strings"

	"github.com/google/uuid"
)

const (
	profileImagePrefix = "profile"
	postImagePrefix    = "post"

	profileImageMaxEdge = 512
)

// saveProfileImage 校验并上传头像,压缩到 512x512 以内。
// 对象存储未启用时静默跳过,返回 nil。
func saveProfileImage(ctx context.Context, file *multipart.FileHeader) (*string, error) {
	if !minio.Enabled() || file == nil {
		return nil, nil
	}

	src, err := file.Open()
	if err != nil {
		return nil, ErrFileNotSupported
	}
	defer src.Close()

	contentType, err := util.GetSafeContentType(src)
	if err != nil || !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		return nil, ErrFileNotSupported
	}

	ext := strings.ToLower(path.Ext(file.Filename))
	resized, size, err := util.FitImage(src, profileImageMaxEdge, profileImageMaxEdge, ext)
	if err != nil {
		return nil, ErrFileNotSupported
	}

	objectName := profileImagePrefix + "/" + uuid.NewString() + ext
	key, err := minio.UploadFile(ctx, objectName, resized, size, contentType)
	if err != nil {
		log.ErrorContext(ctx, "upload profile image failed", "err", err)
		return nil, UnExpectedError
	}
	return &key, nil
}

// savePostImage 校验并上传帖子配图,原图直传。
func savePostImage(ctx context.Context, file *multipart.FileHeader) (*string, error) {
	if !minio.Enabled() || file == nil {
		return nil, nil
	}

	src, err := file.Open()
	if err != nil {
		return nil, ErrFileNotSupported
	}
	defer src.Close()

	contentType, err := util.GetSafeContentType(src)
	if err != nil || !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		return nil, ErrFileNotSupported
	}

	ext := strings.ToLower(path.Ext(file.Filename))
	objectName := postImagePrefix + "/" + uuid.NewString() + ext
	key, err := minio.UploadFile(ctx, objectName, src, file.Size, contentType)
	if err != nil {
		log.ErrorContext(ctx, "upload post image failed", "err", err)
		return nil, UnExpectedError
	}
	return &key, nil
}

// deleteImage 尽力删除,失败只记日志
func deleteImage(ctx context.Context, key *string) {
	if !minio.Enabled() || key == nil {
		return
	}
	if err := minio.DeleteFile(ctx, *key); err != nil {
		log.WarnContext(ctx, "delete image failed", "key", *key, "err", err)
	}
}

// presignImageURL 头像走预签名链接
func presignImageURL(ctx context.Context, key *string) *string {
	if !minio.Enabled() || key == nil {
		return nil
	}
	url, err := minio.GetPresignedURL(ctx, *key)
	if err != nil {
		log.WarnContext(ctx, "presign image failed", "key", *key, "err", err)
		return nil
	}
	return &url
}

// publicImageURL 帖子配图优先走公开链接,桶未公开读时退回预签名
func publicImageURL(ctx context.Context, key *string) *string {
	if !minio.Enabled() || key == nil {
		return nil
	}
	if !config.Cfg.MinIO.PublicLink {
		return presignImageURL(ctx, key)
	}
	url := minio.GetPublicURL(*key)
	return &url
}
