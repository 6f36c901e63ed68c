package filedb

import (
	"Amity/internal/model"
	"context"
	"testing"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store
}

func TestUserPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := Open(dir)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	userRepo := NewUserRepo(store)
	user := &model.User{Email: "a@b.com", Nickname: "alice", Password: "$2a$10$hash"}
	if err := userRepo.CreateUser(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	loaded, ok := reopened.Users.FindByID(user.ID)
	if !ok {
		t.Fatal("user missing after reopen")
	}
	// 密码散列必须随文件一起持久化,否则重启后无法登录
	if loaded.Password != "$2a$10$hash" {
		t.Fatalf("password not persisted, got %q", loaded.Password)
	}
	if loaded.Email != "a@b.com" || loaded.Nickname != "alice" {
		t.Fatalf("unexpected user after reopen: %+v", loaded)
	}
}

func TestDeleteUserCascade(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	userRepo := NewUserRepo(store)
	postRepo := NewPostRepo(store)
	commentRepo := NewCommentRepo(store)
	likeRepo := NewPostLikeRepo(store)
	viewRepo := NewViewHistoryRepo(store)
	sessionRepo := NewLoginSessionRepo(store)

	victim := &model.User{Email: "a@b.com", Nickname: "alice", Password: "x"}
	other := &model.User{Email: "c@d.com", Nickname: "bob", Password: "x"}
	if err := userRepo.CreateUser(ctx, victim); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := userRepo.CreateUser(ctx, other); err != nil {
		t.Fatalf("create user: %v", err)
	}

	mine := &model.Post{Title: "mine", Content: "c", AuthorID: victim.ID}
	theirs := &model.Post{Title: "theirs", Content: "c", AuthorID: other.ID}
	if err := postRepo.CreatePost(ctx, mine); err != nil {
		t.Fatalf("create post: %v", err)
	}
	if err := postRepo.CreatePost(ctx, theirs); err != nil {
		t.Fatalf("create post: %v", err)
	}

	if err := commentRepo.CreateComment(ctx, &model.Comment{Content: "hi", AuthorID: victim.ID, PostID: theirs.ID}); err != nil {
		t.Fatalf("create comment: %v", err)
	}
	// 他人挂在被删用户帖子下的评论也应一并清理
	if err := commentRepo.CreateComment(ctx, &model.Comment{Content: "yo", AuthorID: other.ID, PostID: mine.ID}); err != nil {
		t.Fatalf("create comment: %v", err)
	}
	if err := likeRepo.CreateLike(ctx, &model.PostLike{UserID: victim.ID, PostID: theirs.ID}); err != nil {
		t.Fatalf("create like: %v", err)
	}
	if err := viewRepo.CreateViewHistory(ctx, &model.ViewHistory{UserID: victim.ID, PostID: theirs.ID}); err != nil {
		t.Fatalf("create view: %v", err)
	}
	if err := sessionRepo.CreateSession(ctx, &model.LoginSession{SessionID: "s1", UserID: victim.ID}); err != nil {
		t.Fatalf("create session: %v", err)
	}

	if err := userRepo.DeleteUserCascade(ctx, victim.ID); err != nil {
		t.Fatalf("cascade: %v", err)
	}

	if u, _ := userRepo.GetUserByID(ctx, victim.ID); u != nil {
		t.Fatal("user survived cascade")
	}
	if p, _ := postRepo.GetPostByID(ctx, mine.ID); p != nil {
		t.Fatal("post survived cascade")
	}
	if comments, _ := commentRepo.GetCommentsByPostID(ctx, theirs.ID); len(comments) != 0 {
		t.Fatalf("comments survived cascade: %d", len(comments))
	}
	if comments, _ := commentRepo.GetCommentsByPostID(ctx, mine.ID); len(comments) != 0 {
		t.Fatalf("comments on deleted post survived cascade: %d", len(comments))
	}
	if exists, _ := likeRepo.CheckLikeExists(ctx, victim.ID, theirs.ID); exists {
		t.Fatal("like survived cascade")
	}
	if exists, _ := viewRepo.CheckViewExists(ctx, victim.ID, theirs.ID); exists {
		t.Fatal("view history survived cascade")
	}
	if session, _ := sessionRepo.GetBySessionID(ctx, "s1"); session != nil {
		t.Fatal("session survived cascade")
	}

	// 其他用户的数据不受影响
	if p, _ := postRepo.GetPostByID(ctx, theirs.ID); p == nil {
		t.Fatal("unrelated post was deleted")
	}
}

func TestDeletePostCascade(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	postRepo := NewPostRepo(store)
	commentRepo := NewCommentRepo(store)
	likeRepo := NewPostLikeRepo(store)
	viewRepo := NewViewHistoryRepo(store)

	post := &model.Post{Title: "t", Content: "c", AuthorID: 1}
	if err := postRepo.CreatePost(ctx, post); err != nil {
		t.Fatalf("create post: %v", err)
	}
	if err := commentRepo.CreateComment(ctx, &model.Comment{Content: "hi", AuthorID: 2, PostID: post.ID}); err != nil {
		t.Fatalf("create comment: %v", err)
	}
	if err := likeRepo.CreateLike(ctx, &model.PostLike{UserID: 2, PostID: post.ID}); err != nil {
		t.Fatalf("create like: %v", err)
	}
	if err := viewRepo.CreateViewHistory(ctx, &model.ViewHistory{UserID: 2, PostID: post.ID}); err != nil {
		t.Fatalf("create view: %v", err)
	}

	if err := postRepo.DeletePostCascade(ctx, post.ID); err != nil {
		t.Fatalf("cascade: %v", err)
	}

	if p, _ := postRepo.GetPostByID(ctx, post.ID); p != nil {
		t.Fatal("post survived cascade")
	}
	if count, _ := commentRepo.CountCommentsByPostID(ctx, post.ID); count != 0 {
		t.Fatalf("comments survived cascade: %d", count)
	}
	if count, _ := likeRepo.CountLikesByPostID(ctx, post.ID); count != 0 {
		t.Fatalf("likes survived cascade: %d", count)
	}
	if count, _ := viewRepo.CountViewsByPostID(ctx, post.ID); count != 0 {
		t.Fatalf("views survived cascade: %d", count)
	}
}

func TestLoginSessionRepo(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	sessionRepo := NewLoginSessionRepo(store)

	if err := sessionRepo.CreateSession(ctx, &model.LoginSession{SessionID: "s1", UserID: 1}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := sessionRepo.CreateSession(ctx, &model.LoginSession{SessionID: "s2", UserID: 1}); err != nil {
		t.Fatalf("create: %v", err)
	}

	session, err := sessionRepo.GetBySessionID(ctx, "s1")
	if err != nil || session == nil || session.UserID != 1 {
		t.Fatalf("get: session=%+v err=%v", session, err)
	}
	if session, _ := sessionRepo.GetBySessionID(ctx, "missing"); session != nil {
		t.Fatal("expected nil for unknown session")
	}

	affected, err := sessionRepo.DeleteBySessionID(ctx, "s1")
	if err != nil || affected != 1 {
		t.Fatalf("delete: affected=%d err=%v", affected, err)
	}
	affected, err = sessionRepo.DeleteBySessionID(ctx, "s1")
	if err != nil || affected != 0 {
		t.Fatalf("second delete: affected=%d err=%v", affected, err)
	}

	evicted, err := sessionRepo.DeleteAllByUserID(ctx, 1)
	if err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if len(evicted) != 1 || evicted[0] != "s2" {
		t.Fatalf("expected evicted [s2], got %v", evicted)
	}
	if session, _ := sessionRepo.GetBySessionID(ctx, "s2"); session != nil {
		t.Fatal("session survived DeleteAllByUserID")
	}
}
