package service

import (
	"Amity/internal/api/dto"
	"context"
	"errors"
	"testing"
)

func TestCommentLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	authorID := mustRegister(t, env, "a@b.com", "Abc123!@", "alice")
	strangerID := mustRegister(t, env, "c@d.com", "Abc123!@", "bob")

	postID, err := env.postSvc.CreatePost(ctx, authorID, &createPostFixture, nil)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	missing := dto.CreateCommentDTO{PostID: 999, Content: "hi"}
	if _, err = env.actionSvc.CreateComment(ctx, authorID, &missing); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}

	create := dto.CreateCommentDTO{PostID: postID, Content: "nice post"}
	comment, err := env.actionSvc.CreateComment(ctx, authorID, &create)
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}
	if comment.CommentID == 0 || comment.Content != "nice post" || comment.AuthorName != "alice" {
		t.Fatalf("unexpected comment dto: %+v", comment)
	}

	update := dto.UpdateCommentDTO{CommentID: comment.CommentID, Content: "edited"}
	if _, err = env.actionSvc.UpdateComment(ctx, strangerID, &update); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if _, err = env.actionSvc.UpdateComment(ctx, authorID, &update); err != nil {
		t.Fatalf("update comment: %v", err)
	}

	detail, err := env.postSvc.GetPostDetail(ctx, authorID, postID, true)
	if err != nil {
		t.Fatalf("get detail: %v", err)
	}
	if len(detail.Comments) != 1 || detail.Comments[0].Content != "edited" {
		t.Fatalf("unexpected comments: %+v", detail.Comments)
	}

	ghost := dto.UpdateCommentDTO{CommentID: 999, Content: "x"}
	if _, err = env.actionSvc.UpdateComment(ctx, authorID, &ghost); !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}

	if err = env.actionSvc.DeleteComment(ctx, strangerID, comment.CommentID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner on delete, got %v", err)
	}
	if err = env.actionSvc.DeleteComment(ctx, authorID, comment.CommentID); err != nil {
		t.Fatalf("delete comment: %v", err)
	}
	if err = env.actionSvc.DeleteComment(ctx, authorID, comment.CommentID); !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound after delete, got %v", err)
	}
}

func TestLikeConflictAndNotFound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	authorID := mustRegister(t, env, "a@b.com", "Abc123!@", "alice")
	readerID := mustRegister(t, env, "c@d.com", "Abc123!@", "bob")

	postID, err := env.postSvc.CreatePost(ctx, authorID, &createPostFixture, nil)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	if _, err = env.actionSvc.CreateLike(ctx, readerID, 999); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}

	likeID, err := env.actionSvc.CreateLike(ctx, readerID, postID)
	if err != nil {
		t.Fatalf("create like: %v", err)
	}
	if likeID == 0 {
		t.Fatal("expected non-zero like id")
	}

	if _, err = env.actionSvc.CreateLike(ctx, readerID, postID); !errors.Is(err, ErrLikeDuplicate) {
		t.Fatalf("expected ErrLikeDuplicate, got %v", err)
	}

	detail, err := env.postSvc.GetPostDetail(ctx, readerID, postID, false)
	if err != nil {
		t.Fatalf("get detail: %v", err)
	}
	if !detail.IsLiked || detail.LikeCount != 1 {
		t.Fatalf("expected liked post with count 1, got isLiked=%v count=%d", detail.IsLiked, detail.LikeCount)
	}

	if err = env.actionSvc.DeleteLike(ctx, readerID, postID); err != nil {
		t.Fatalf("delete like: %v", err)
	}
	if err = env.actionSvc.DeleteLike(ctx, readerID, postID); !errors.Is(err, ErrLikeNotFound) {
		t.Fatalf("expected ErrLikeNotFound, got %v", err)
	}
}
