package service

import (
	"Amity/internal/api/dto"
	"context"
	"errors"
	"fmt"
	"testing"
)

var createPostFixture = dto.CreatePostDTO{Title: "hello", Content: "world"}

func TestPostPageWalk(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	authorID := mustRegister(t, env, "a@b.com", "Abc123!@", "alice")

	ids := make(map[uint64]bool)
	for i := 0; i < 7; i++ {
		createDTO := dto.CreatePostDTO{Title: fmt.Sprintf("post-%d", i), Content: "c"}
		postID, err := env.postSvc.CreatePost(ctx, authorID, &createDTO, nil)
		if err != nil {
			t.Fatalf("create post: %v", err)
		}
		ids[postID] = false
	}

	var lastID uint64
	var pages int
	for {
		pages++
		if pages > 5 {
			t.Fatal("pagination did not terminate")
		}
		page, err := env.postSvc.GetPostPage(ctx, 3, lastID)
		if err != nil {
			t.Fatalf("get page: %v", err)
		}
		for _, item := range page.Content {
			seen, known := ids[item.PostID]
			if !known {
				t.Fatalf("unknown post id %d", item.PostID)
			}
			if seen {
				t.Fatalf("post %d returned twice", item.PostID)
			}
			ids[item.PostID] = true
			if item.AuthorName != "alice" {
				t.Fatalf("expected author alice, got %q", item.AuthorName)
			}
		}
		if !page.HasNext {
			if page.LastID != -1 {
				t.Fatalf("expected -1 cursor on final page, got %d", page.LastID)
			}
			break
		}
		lastID = uint64(page.LastID)
	}

	if pages != 3 {
		t.Fatalf("expected 3 pages for 7 posts of size 3, got %d", pages)
	}
	for id, seen := range ids {
		if !seen {
			t.Fatalf("post %d was skipped", id)
		}
	}
}

func TestPostPageFirstPageIsNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	authorID := mustRegister(t, env, "a@b.com", "Abc123!@", "alice")

	for i := 0; i < 4; i++ {
		createDTO := dto.CreatePostDTO{Title: fmt.Sprintf("post-%d", i), Content: "c"}
		if _, err := env.postSvc.CreatePost(ctx, authorID, &createDTO, nil); err != nil {
			t.Fatalf("create post: %v", err)
		}
	}

	page, err := env.postSvc.GetPostPage(ctx, 2, 0)
	if err != nil {
		t.Fatalf("get page: %v", err)
	}
	if len(page.Content) != 2 || !page.HasNext {
		t.Fatalf("unexpected page: len=%d hasNext=%v", len(page.Content), page.HasNext)
	}
	if page.Content[0].PostID <= page.Content[1].PostID {
		t.Fatalf("expected descending ids, got %d then %d", page.Content[0].PostID, page.Content[1].PostID)
	}
}

func TestPostPageUnknownCursor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	authorID := mustRegister(t, env, "a@b.com", "Abc123!@", "alice")
	if _, err := env.postSvc.CreatePost(ctx, authorID, &createPostFixture, nil); err != nil {
		t.Fatalf("create post: %v", err)
	}

	page, err := env.postSvc.GetPostPage(ctx, 5, 999)
	if err != nil {
		t.Fatalf("get page: %v", err)
	}
	if len(page.Content) != 0 || page.HasNext || page.LastID != -1 {
		t.Fatalf("expected empty page for unknown cursor, got %+v", page)
	}
}

func TestGetPostDetailRecordsViewOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	authorID := mustRegister(t, env, "a@b.com", "Abc123!@", "alice")
	readerID := mustRegister(t, env, "c@d.com", "Abc123!@", "bob")

	postID, err := env.postSvc.CreatePost(ctx, authorID, &createPostFixture, nil)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	detail, err := env.postSvc.GetPostDetail(ctx, readerID, postID, true)
	if err != nil {
		t.Fatalf("get detail: %v", err)
	}
	if detail.ViewCount != 1 {
		t.Fatalf("expected view count 1, got %d", detail.ViewCount)
	}
	if detail.Author == nil || detail.Author.Name != "alice" {
		t.Fatalf("unexpected author: %+v", detail.Author)
	}

	// 同一用户重复浏览不再计数
	detail, err = env.postSvc.GetPostDetail(ctx, readerID, postID, false)
	if err != nil {
		t.Fatalf("second get detail: %v", err)
	}
	if detail.ViewCount != 1 {
		t.Fatalf("expected view count to stay 1, got %d", detail.ViewCount)
	}
	if detail.Comments != nil {
		t.Fatal("expected no comments when flag is off")
	}

	// 另一个用户浏览会计数
	detail, err = env.postSvc.GetPostDetail(ctx, authorID, postID, false)
	if err != nil {
		t.Fatalf("author get detail: %v", err)
	}
	if detail.ViewCount != 2 {
		t.Fatalf("expected view count 2, got %d", detail.ViewCount)
	}
}

func TestGetPostDetailNotFound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := mustRegister(t, env, "a@b.com", "Abc123!@", "alice")

	if _, err := env.postSvc.GetPostDetail(ctx, userID, 42, true); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestUpdatePostOwnership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	authorID := mustRegister(t, env, "a@b.com", "Abc123!@", "alice")
	strangerID := mustRegister(t, env, "c@d.com", "Abc123!@", "bob")

	postID, err := env.postSvc.CreatePost(ctx, authorID, &createPostFixture, nil)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	updateDTO := dto.UpdatePostDTO{Title: "edited", Content: "edited"}
	if _, err = env.postSvc.UpdatePost(ctx, strangerID, postID, &updateDTO, nil); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if err = env.postSvc.DeletePost(ctx, strangerID, postID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}

	if _, err = env.postSvc.UpdatePost(ctx, authorID, postID, &updateDTO, nil); err != nil {
		t.Fatalf("owner update: %v", err)
	}
	detail, err := env.postSvc.GetPostDetail(ctx, authorID, postID, false)
	if err != nil {
		t.Fatalf("get detail: %v", err)
	}
	if detail.Title != "edited" || detail.Content != "edited" {
		t.Fatalf("update not applied: %+v", detail)
	}
}

func TestDeletePostCascadesComments(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	authorID := mustRegister(t, env, "a@b.com", "Abc123!@", "alice")

	postID, err := env.postSvc.CreatePost(ctx, authorID, &createPostFixture, nil)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	commentDTO := dto.CreateCommentDTO{PostID: postID, Content: "nice"}
	if _, err = env.actionSvc.CreateComment(ctx, authorID, &commentDTO); err != nil {
		t.Fatalf("create comment: %v", err)
	}
	if _, err = env.actionSvc.CreateLike(ctx, authorID, postID); err != nil {
		t.Fatalf("create like: %v", err)
	}

	if err = env.postSvc.DeletePost(ctx, authorID, postID); err != nil {
		t.Fatalf("delete post: %v", err)
	}
	if env.store.Comments.Len() != 0 {
		t.Fatalf("comments survived post delete: %d", env.store.Comments.Len())
	}
	if env.store.PostLikes.Len() != 0 {
		t.Fatalf("likes survived post delete: %d", env.store.PostLikes.Len())
	}
	if _, err = env.postSvc.GetPostDetail(ctx, authorID, postID, false); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}
