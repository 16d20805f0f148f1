package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/chabeb/social-network/backend/internal/models"
)

type likeFixture struct {
	handler  *LikeHandler
	userRepo *mockUserRepo
	postRepo *mockPostRepo
	likeRepo *mockLikeRepo
}

func newLikeFixture(t *testing.T) *likeFixture {
	t.Helper()
	userRepo := newMockUserRepo()
	seedUser(t, userRepo, "alice77", "alice@example.com") // ID 1
	seedUser(t, userRepo, "bob99", "bob@example.com")     // ID 2
	postRepo := newMockPostRepo()
	likeRepo := newMockLikeRepo(userRepo)
	return &likeFixture{
		handler:  NewLikeHandler(likeRepo, postRepo),
		userRepo: userRepo,
		postRepo: postRepo,
		likeRepo: likeRepo,
	}
}

func (f *likeFixture) seedPost(t *testing.T, owner uint) string {
	t.Helper()
	post := &models.Post{UserID: owner, Title: "a post", Content: "content"}
	if err := f.postRepo.CreatePost(context.Background(), post); err != nil {
		t.Fatalf("failed to seed post: %v", err)
	}
	return post.ID.Hex()
}

func TestLikePost(t *testing.T) {
	e := newTestEcho()

	like := func(t *testing.T, f *likeFixture, actor uint, postID string) error {
		t.Helper()
		c, _ := newRequestContext(e, http.MethodPost, "/api/posts/like/"+postID, "", actor)
		c.SetParamNames("id")
		c.SetParamValues(postID)
		return f.handler.LikePost(c)
	}

	t.Run("missing post is not found", func(t *testing.T) {
		f := newLikeFixture(t)
		assertHTTPError(t, like(t, f, 1, "aaaaaaaaaaaaaaaaaaaaaaaa"), http.StatusNotFound)
	})

	t.Run("second like is a conflict", func(t *testing.T) {
		f := newLikeFixture(t)
		postID := f.seedPost(t, 2)

		if err := like(t, f, 1, postID); err != nil {
			t.Fatalf("first like failed: %v", err)
		}
		assertHTTPError(t, like(t, f, 1, postID), http.StatusConflict)
	})

	t.Run("like increments the post counter", func(t *testing.T) {
		f := newLikeFixture(t)
		postID := f.seedPost(t, 2)

		if err := like(t, f, 1, postID); err != nil {
			t.Fatalf("like failed: %v", err)
		}
		post, _ := f.postRepo.GetPostByID(context.Background(), postID)
		if post.LikesCount != 1 {
			t.Errorf("expected likes_count 1, got %d", post.LikesCount)
		}
	})
}

func TestUnlikePost(t *testing.T) {
	e := newTestEcho()

	unlike := func(t *testing.T, f *likeFixture, actor uint, postID string) error {
		t.Helper()
		c, _ := newRequestContext(e, http.MethodDelete, "/api/posts/like/"+postID, "", actor)
		c.SetParamNames("id")
		c.SetParamValues(postID)
		return f.handler.UnlikePost(c)
	}

	t.Run("unlike without a like is not found", func(t *testing.T) {
		f := newLikeFixture(t)
		postID := f.seedPost(t, 2)
		assertHTTPError(t, unlike(t, f, 1, postID), http.StatusNotFound)
	})

	t.Run("like then unlike then unlike again", func(t *testing.T) {
		f := newLikeFixture(t)
		postID := f.seedPost(t, 2)
		if err := f.likeRepo.CreateLike(&models.Like{UserID: 1, PostID: postID}); err != nil {
			t.Fatalf("failed to seed like: %v", err)
		}

		if err := unlike(t, f, 1, postID); err != nil {
			t.Fatalf("unlike failed: %v", err)
		}
		assertHTTPError(t, unlike(t, f, 1, postID), http.StatusNotFound)
	})
}

func TestGetUsersWhoLiked(t *testing.T) {
	e := newTestEcho()
	f := newLikeFixture(t)
	postID := f.seedPost(t, 2)
	if err := f.likeRepo.CreateLike(&models.Like{UserID: 1, PostID: postID}); err != nil {
		t.Fatalf("failed to seed like: %v", err)
	}

	c, rec := newRequestContext(e, http.MethodGet, "/api/posts/like/"+postID+"/users", "", 0)
	c.SetParamNames("postId")
	c.SetParamValues(postID)

	if err := f.handler.GetUsersWhoLiked(c); err != nil {
		t.Fatalf("GetUsersWhoLiked() error = %v", err)
	}

	var users []models.User
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(users) != 1 || users[0].ID != 1 {
		t.Fatalf("expected exactly alice in the likers, got %+v", users)
	}
}

func TestGetUserLikedPosts(t *testing.T) {
	e := newTestEcho()
	f := newLikeFixture(t)
	likedID := f.seedPost(t, 2)
	f.seedPost(t, 2) // unliked post stays out of the listing
	if err := f.likeRepo.CreateLike(&models.Like{UserID: 1, PostID: likedID}); err != nil {
		t.Fatalf("failed to seed like: %v", err)
	}

	c, rec := newRequestContext(e, http.MethodGet, "/api/posts/liked/1", "", 0)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := f.handler.GetUserLikedPosts(c); err != nil {
		t.Fatalf("GetUserLikedPosts() error = %v", err)
	}

	var posts []models.Post
	if err := json.Unmarshal(rec.Body.Bytes(), &posts); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(posts) != 1 || posts[0].ID.Hex() != likedID {
		t.Fatalf("expected exactly the liked post, got %+v", posts)
	}
}
