package service

import (
	"Amity/internal/api/dto"
	"Amity/internal/model"
	"Amity/internal/repository"
	"context"
	log "log/slog"
	"mime/multipart"

	"github.com/jinzhu/copier"
)

type PostService interface {
	// GetPostPage 按 id 降序游标分页,lastID 为 0 时从最新一条开始
	GetPostPage(ctx context.Context, size int, lastID uint64) (*dto.PostPageDTO, error)
	// GetPostDetail 查详情并记录浏览历史,每个用户对同一帖子只记一次
	GetPostDetail(ctx context.Context, userID, postID uint64, withComments bool) (*dto.PostDetailDTO, error)
	CreatePost(ctx context.Context, userID uint64, createDTO *dto.CreatePostDTO, postImage *multipart.FileHeader) (uint64, error)
	UpdatePost(ctx context.Context, userID, postID uint64, updateDTO *dto.UpdatePostDTO, postImage *multipart.FileHeader) (uint64, error)
	DeletePost(ctx context.Context, userID, postID uint64) error
}

type postServiceImpl struct {
	postRepo    repository.PostRepo
	userRepo    repository.UserRepo
	commentRepo repository.CommentRepo
	likeRepo    repository.PostLikeRepo
	viewRepo    repository.ViewHistoryRepo
}

func NewPostService(
	postRepo repository.PostRepo,
	userRepo repository.UserRepo,
	commentRepo repository.CommentRepo,
	likeRepo repository.PostLikeRepo,
	viewRepo repository.ViewHistoryRepo,
) PostService {
	return &postServiceImpl{
		postRepo:    postRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		viewRepo:    viewRepo,
	}
}

func (s *postServiceImpl) GetPostPage(ctx context.Context, size int, lastID uint64) (*dto.PostPageDTO, error) {
	page, err := s.postRepo.GetPage(ctx, size, lastID)
	if err != nil {
		log.ErrorContext(ctx, "get post page failed", "err", err)
		return nil, UnExpectedError
	}

	content := make([]*dto.PostSummaryDTO, 0, len(page.Items))
	for _, post := range page.Items {
		item := &dto.PostSummaryDTO{
			PostID:          post.ID,
			Title:           post.Title,
			CreatedDateTime: post.CreatedAt.Format("2006-01-02 15:04:05"),
		}

		author, err := s.userRepo.GetUserByID(ctx, post.AuthorID)
		if err != nil {
			return nil, UnExpectedError
		}
		if author != nil {
			item.AuthorName = author.Nickname
			item.ProfileImageURL = presignImageURL(ctx, author.ProfileImageKey)
		}

		if item.LikeCount, err = s.likeRepo.CountLikesByPostID(ctx, post.ID); err != nil {
			return nil, UnExpectedError
		}
		if item.CommentCount, err = s.commentRepo.CountCommentsByPostID(ctx, post.ID); err != nil {
			return nil, UnExpectedError
		}
		if item.ViewCount, err = s.viewRepo.CountViewsByPostID(ctx, post.ID); err != nil {
			return nil, UnExpectedError
		}
		content = append(content, item)
	}

	return &dto.PostPageDTO{
		Content: content,
		HasNext: page.HasNext,
		LastID:  page.LastID,
	}, nil
}

func (s *postServiceImpl) GetPostDetail(ctx context.Context, userID, postID uint64, withComments bool) (*dto.PostDetailDTO, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, UnExpectedError
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	// 浏览历史,同一用户只记一次
	viewed, err := s.viewRepo.CheckViewExists(ctx, userID, postID)
	if err != nil {
		return nil, UnExpectedError
	}
	if !viewed {
		view := &model.ViewHistory{UserID: userID, PostID: postID}
		if err = s.viewRepo.CreateViewHistory(ctx, view); err != nil {
			log.ErrorContext(ctx, "record view history failed", "err", err)
			return nil, UnExpectedError
		}
	}

	author, err := s.userRepo.GetUserByID(ctx, post.AuthorID)
	if err != nil {
		return nil, UnExpectedError
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}

	detail := &dto.PostDetailDTO{}
	if err = copier.Copy(detail, post); err != nil {
		return nil, UnExpectedError
	}
	detail.PostID = post.ID
	detail.ImageURL = publicImageURL(ctx, post.ContentImageKey)
	detail.CreatedDateTime = post.CreatedAt.Format("2006-01-02 15:04:05")
	detail.Author = &dto.AuthorDTO{
		ID:              author.ID,
		Name:            author.Nickname,
		ProfileImageURL: presignImageURL(ctx, author.ProfileImageKey),
	}

	if detail.IsLiked, err = s.likeRepo.CheckLikeExists(ctx, userID, postID); err != nil {
		return nil, UnExpectedError
	}
	if detail.LikeCount, err = s.likeRepo.CountLikesByPostID(ctx, postID); err != nil {
		return nil, UnExpectedError
	}
	if detail.ViewCount, err = s.viewRepo.CountViewsByPostID(ctx, postID); err != nil {
		return nil, UnExpectedError
	}

	comments, err := s.commentRepo.GetCommentsByPostID(ctx, postID)
	if err != nil {
		return nil, UnExpectedError
	}
	detail.CommentCount = int64(len(comments))

	if withComments {
		items := make([]*dto.CommentDTO, 0, len(comments))
		for _, comment := range comments {
			item := &dto.CommentDTO{
				CommentID:       comment.ID,
				Content:         comment.Content,
				CreatedDateTime: comment.CreatedAt.Format("2006-01-02 15:04:05"),
			}
			commentAuthor, err := s.userRepo.GetUserByID(ctx, comment.AuthorID)
			if err != nil {
				return nil, UnExpectedError
			}
			if commentAuthor != nil {
				item.Author = &dto.AuthorDTO{
					ID:              commentAuthor.ID,
					Name:            commentAuthor.Nickname,
					ProfileImageURL: presignImageURL(ctx, commentAuthor.ProfileImageKey),
				}
			}
			items = append(items, item)
		}
		detail.Comments = items
	}
	return detail, nil
}

func (s *postServiceImpl) CreatePost(ctx context.Context, userID uint64, createDTO *dto.CreatePostDTO, postImage *multipart.FileHeader) (uint64, error) {
	imageKey, err := savePostImage(ctx, postImage)
	if err != nil {
		return 0, err
	}

	post := &model.Post{
		Title:           createDTO.Title,
		Content:         createDTO.Content,
		ContentImageKey: imageKey,
		AuthorID:        userID,
	}
	if err = s.postRepo.CreatePost(ctx, post); err != nil {
		log.ErrorContext(ctx, "create post failed", "err", err)
		deleteImage(ctx, imageKey)
		return 0, UnExpectedError
	}
	return post.ID, nil
}

func (s *postServiceImpl) UpdatePost(ctx context.Context, userID, postID uint64, updateDTO *dto.UpdatePostDTO, postImage *multipart.FileHeader) (uint64, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return 0, UnExpectedError
	}
	if post == nil {
		return 0, ErrPostNotFound
	}
	if post.AuthorID != userID {
		return 0, ErrNotOwner
	}

	if updateDTO.RemoveImageFlag && post.ContentImageKey != nil {
		deleteImage(ctx, post.ContentImageKey)
		post.ContentImageKey = nil
	}

	// 只有当前没有配图时才接受新图
	if post.ContentImageKey == nil && postImage != nil {
		newKey, err := savePostImage(ctx, postImage)
		if err != nil {
			return 0, err
		}
		post.ContentImageKey = newKey
	}

	post.Title = updateDTO.Title
	post.Content = updateDTO.Content
	if err = s.postRepo.UpdatePost(ctx, post); err != nil {
		log.ErrorContext(ctx, "update post failed", "post_id", postID, "err", err)
		return 0, UnExpectedError
	}
	return post.ID, nil
}

func (s *postServiceImpl) DeletePost(ctx context.Context, userID, postID uint64) error {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return UnExpectedError
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.AuthorID != userID {
		return ErrNotOwner
	}

	if err = s.postRepo.DeletePostCascade(ctx, postID); err != nil {
		log.ErrorContext(ctx, "delete post cascade failed", "post_id", postID, "err", err)
		return UnExpectedError
	}
	deleteImage(ctx, post.ContentImageKey)
	return nil
}
