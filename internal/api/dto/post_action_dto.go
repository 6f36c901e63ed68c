package dto

// CommentDTO 评论条目,帖子详情与新建评论共用
type CommentDTO struct {
	CommentID       uint64     `json:"commentId"`
	Content         string     `json:"content"`
	PostID          uint64     `json:"postId,omitempty"`
	CreatedDateTime string     `json:"createdDateTime"`
	Author          *AuthorDTO `json:"author,omitempty"`
	AuthorName      string     `json:"authorName,omitempty"`
	ProfileImageURL *string    `json:"profileImageUrl,omitempty"`
}

type CreateCommentDTO struct {
	PostID  uint64 `json:"postId" form:"postId" validate:"required,min=1"`
	Content string `json:"content" form:"content" validate:"required"`
}

type UpdateCommentDTO struct {
	CommentID uint64 `json:"commentId" form:"commentId" validate:"required,min=1"`
	Content   string `json:"content" form:"content" validate:"required"`
}

type DeleteCommentDTO struct {
	CommentID uint64 `json:"commentId" form:"commentId" validate:"required,min=1"`
}

type LikeDTO struct {
	PostID uint64 `json:"postId" form:"postId" validate:"required,min=1"`
}
