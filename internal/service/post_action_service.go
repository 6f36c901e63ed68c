package service

import (
	"Amity/internal/api/dto"
	"Amity/internal/model"
	"Amity/internal/repository"
	"context"
	log "log/slog"
)

type PostActionService interface {
	CreateComment(ctx context.Context, userID uint64, createDTO *dto.CreateCommentDTO) (*dto.CommentDTO, error)
	UpdateComment(ctx context.Context, userID uint64, updateDTO *dto.UpdateCommentDTO) (uint64, error)
	DeleteComment(ctx context.Context, userID, commentID uint64) error
	CreateLike(ctx context.Context, userID, postID uint64) (uint64, error)
	DeleteLike(ctx context.Context, userID, postID uint64) error
}

type postActionServiceImpl struct {
	postRepo    repository.PostRepo
	userRepo    repository.UserRepo
	commentRepo repository.CommentRepo
	likeRepo    repository.PostLikeRepo
}

func NewPostActionService(
	postRepo repository.PostRepo,
	userRepo repository.UserRepo,
	commentRepo repository.CommentRepo,
	likeRepo repository.PostLikeRepo,
) PostActionService {
	return &postActionServiceImpl{
		postRepo:    postRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
	}
}

func (s *postActionServiceImpl) CreateComment(ctx context.Context, userID uint64, createDTO *dto.CreateCommentDTO) (*dto.CommentDTO, error) {
	post, err := s.postRepo.GetPostByID(ctx, createDTO.PostID)
	if err != nil {
		return nil, UnExpectedError
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	author, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, UnExpectedError
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	comment := &model.Comment{
		Content:  createDTO.Content,
		AuthorID: userID,
		PostID:   post.ID,
	}
	if err = s.commentRepo.CreateComment(ctx, comment); err != nil {
		log.ErrorContext(ctx, "create comment failed", "err", err)
		return nil, UnExpectedError
	}

	return &dto.CommentDTO{
		CommentID:       comment.ID,
		Content:         comment.Content,
		PostID:          post.ID,
		CreatedDateTime: comment.CreatedAt.Format("2006-01-02 15:04:05"),
		AuthorName:      author.Nickname,
		ProfileImageURL: presignImageURL(ctx, author.ProfileImageKey),
	}, nil
}

func (s *postActionServiceImpl) UpdateComment(ctx context.Context, userID uint64, updateDTO *dto.UpdateCommentDTO) (uint64, error) {
	comment, err := s.commentRepo.GetCommentByID(ctx, updateDTO.CommentID)
	if err != nil {
		return 0, UnExpectedError
	}
	if comment == nil {
		return 0, ErrCommentNotFound
	}
	if comment.AuthorID != userID {
		return 0, ErrNotOwner
	}

	if err = s.commentRepo.UpdateCommentContent(ctx, comment.ID, updateDTO.Content); err != nil {
		log.ErrorContext(ctx, "update comment failed", "comment_id", comment.ID, "err", err)
		return 0, UnExpectedError
	}
	return comment.ID, nil
}

func (s *postActionServiceImpl) DeleteComment(ctx context.Context, userID, commentID uint64) error {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return UnExpectedError
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.AuthorID != userID {
		return ErrNotOwner
	}

	if _, err = s.commentRepo.DeleteComment(ctx, commentID); err != nil {
		log.ErrorContext(ctx, "delete comment failed", "comment_id", commentID, "err", err)
		return UnExpectedError
	}
	return nil
}

func (s *postActionServiceImpl) CreateLike(ctx context.Context, userID, postID uint64) (uint64, error) {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return 0, UnExpectedError
	}
	if post == nil {
		return 0, ErrPostNotFound
	}

	exists, err := s.likeRepo.CheckLikeExists(ctx, userID, post.ID)
	if err != nil {
		return 0, UnExpectedError
	}
	if exists {
		return 0, ErrLikeDuplicate
	}

	like := &model.PostLike{UserID: userID, PostID: post.ID}
	if err = s.likeRepo.CreateLike(ctx, like); err != nil {
		log.ErrorContext(ctx, "create like failed", "err", err)
		return 0, UnExpectedError
	}
	return like.ID, nil
}

func (s *postActionServiceImpl) DeleteLike(ctx context.Context, userID, postID uint64) error {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return UnExpectedError
	}
	if post == nil {
		return ErrPostNotFound
	}

	affected, err := s.likeRepo.DeleteLike(ctx, userID, post.ID)
	if err != nil {
		return UnExpectedError
	}
	if affected == 0 {
		return ErrLikeNotFound
	}
	return nil
}
