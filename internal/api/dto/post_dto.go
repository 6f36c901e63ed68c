package dto

// AuthorDTO 作者摘要,嵌在帖子详情和评论里
type AuthorDTO struct {
	ID              uint64  `json:"id"`
	Name            string  `json:"name"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

// PostSummaryDTO 列表页单条
type PostSummaryDTO struct {
	PostID          uint64  `json:"postId"`
	Title           string  `json:"title"`
	LikeCount       int64   `json:"likeCount"`
	CommentCount    int64   `json:"commentCount"`
	ViewCount       int64   `json:"viewCount"`
	CreatedDateTime string  `json:"createdDateTime"`
	AuthorName      string  `json:"authorName"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

// PostPageDTO 游标分页响应
type PostPageDTO struct {
	Content []*PostSummaryDTO `json:"content"`
	HasNext bool              `json:"hasNext"`
	LastID  int64             `json:"lastId"`
}

// PostDetailDTO 帖子详情,comment=n 时 Comments 为 nil
type PostDetailDTO struct {
	PostID          uint64        `json:"postId"`
	Title           string        `json:"title"`
	Content         string        `json:"content"`
	ImageURL        *string       `json:"imageUrl"`
	Author          *AuthorDTO    `json:"author"`
	IsLiked         bool          `json:"isLiked"`
	LikeCount       int64         `json:"likeCount"`
	ViewCount       int64         `json:"viewCount"`
	CommentCount    int64         `json:"commentCount"`
	CreatedDateTime string        `json:"createdDateTime"`
	Comments        []*CommentDTO `json:"comments,omitempty"`
}

// CreatePostDTO 发帖表单 (multipart),postImage 文件单独取
type CreatePostDTO struct {
	Title   string `form:"title" validate:"required"`
	Content string `form:"content" validate:"required"`
}

// UpdatePostDTO 改帖表单 (multipart)
type UpdatePostDTO struct {
	Title           string `form:"title" validate:"required"`
	Content         string `form:"content" validate:"required"`
	RemoveImageFlag bool   `form:"removeImageFlag"`
}
