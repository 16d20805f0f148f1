package handlers

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/chabeb/social-network/backend/internal/apperrors"
	"github.com/chabeb/social-network/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository doubles. They enforce the same uniqueness and
// not-found semantics as the real stores so handler flows behave end to end.

type mockUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (m *mockUserRepo) CreateUser(user *models.User) error {
	for _, u := range m.users {
		if u.Email == user.Email || u.Username == user.Username {
			return apperrors.Duplicate("username or email already taken")
		}
	}
	user.ID = m.nextID
	m.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetUserByID(id uint) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, apperrors.NotFound("user not found")
	}
	copied := *u
	return &copied, nil
}

func (m *mockUserRepo) GetUserByEmail(email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.NotFound("user not found")
}

func (m *mockUserRepo) GetUserByUsername(username string) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.NotFound("user not found")
}

func (m *mockUserRepo) GetUsersByIDs(ids []uint) ([]models.User, error) {
	var users []models.User
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (m *mockUserRepo) GetRandomUsers(size int) ([]models.User, error) {
	var users []models.User
	for _, u := range m.users {
		if len(users) >= size {
			break
		}
		users = append(users, *u)
	}
	return users, nil
}

func (m *mockUserRepo) UpdateUser(user *models.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return apperrors.NotFound("user not found")
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

type followEdge struct {
	follower, following uint
}

type mockFollowRepo struct {
	edges map[followEdge]bool
	users *mockUserRepo
}

func newMockFollowRepo(users *mockUserRepo) *mockFollowRepo {
	return &mockFollowRepo{edges: make(map[followEdge]bool), users: users}
}

func (m *mockFollowRepo) CreateFollow(follow *models.Follow) error {
	edge := followEdge{follow.FollowerID, follow.FollowingID}
	if m.edges[edge] {
		return apperrors.Duplicate("already following this user")
	}
	m.edges[edge] = true
	return nil
}

func (m *mockFollowRepo) DeleteFollow(followerID, followingID uint) error {
	edge := followEdge{followerID, followingID}
	if !m.edges[edge] {
		return apperrors.NotFound("not following this user")
	}
	delete(m.edges, edge)
	return nil
}

func (m *mockFollowRepo) IsFollowing(followerID, followingID uint) (bool, error) {
	return m.edges[followEdge{followerID, followingID}], nil
}

func (m *mockFollowRepo) GetFollowers(userID uint) ([]models.User, error) {
	users := []models.User{}
	for edge := range m.edges {
		if edge.following == userID {
			if u, ok := m.users.users[edge.follower]; ok {
				users = append(users, *u)
			}
		}
	}
	return users, nil
}

func (m *mockFollowRepo) GetFollowing(userID uint) ([]models.User, error) {
	users := []models.User{}
	for edge := range m.edges {
		if edge.follower == userID {
			if u, ok := m.users.users[edge.following]; ok {
				users = append(users, *u)
			}
		}
	}
	return users, nil
}

func (m *mockFollowRepo) GetFollowingIDs(userID uint) ([]uint, error) {
	ids := []uint{}
	for edge := range m.edges {
		if edge.follower == userID {
			ids = append(ids, edge.following)
		}
	}
	return ids, nil
}

type mockLikeRepo struct {
	likes        map[string]map[uint]bool // postID -> userIDs
	users        *mockUserRepo
	deletedPosts []string // cascade calls recorded
}

func newMockLikeRepo(users *mockUserRepo) *mockLikeRepo {
	return &mockLikeRepo{likes: make(map[string]map[uint]bool), users: users}
}

func (m *mockLikeRepo) CreateLike(like *models.Like) error {
	if m.likes[like.PostID] == nil {
		m.likes[like.PostID] = make(map[uint]bool)
	}
	if m.likes[like.PostID][like.UserID] {
		return apperrors.Duplicate("post already liked by this user")
	}
	m.likes[like.PostID][like.UserID] = true
	return nil
}

func (m *mockLikeRepo) DeleteLike(postID string, userID uint) error {
	if !m.likes[postID][userID] {
		return apperrors.NotFound("like not found")
	}
	delete(m.likes[postID], userID)
	return nil
}

func (m *mockLikeRepo) HasUserLikedPost(postID string, userID uint) (bool, error) {
	return m.likes[postID][userID], nil
}

func (m *mockLikeRepo) GetLikedPostIDs(userID uint) ([]string, error) {
	ids := []string{}
	for postID, userIDs := range m.likes {
		if userIDs[userID] {
			ids = append(ids, postID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (m *mockLikeRepo) GetUsersWhoLiked(postID string) ([]models.User, error) {
	users := []models.User{}
	for userID := range m.likes[postID] {
		if u, ok := m.users.users[userID]; ok {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (m *mockLikeRepo) DeleteLikesForPost(postID string) error {
	delete(m.likes, postID)
	m.deletedPosts = append(m.deletedPosts, postID)
	return nil
}

type mockCommentRepo struct {
	comments     map[uint]*models.Comment
	nextID       uint
	deletedPosts []string // cascade calls recorded
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{comments: make(map[uint]*models.Comment), nextID: 1}
}

func (m *mockCommentRepo) CreateComment(comment *models.Comment) error {
	comment.ID = m.nextID
	m.nextID++
	comment.CreatedAt = time.Now()
	copied := *comment
	m.comments[comment.ID] = &copied
	return nil
}

func (m *mockCommentRepo) GetCommentByID(id uint) (*models.Comment, error) {
	c, ok := m.comments[id]
	if !ok {
		return nil, apperrors.NotFound("comment not found")
	}
	copied := *c
	return &copied, nil
}

func (m *mockCommentRepo) UpdateComment(comment *models.Comment) error {
	if _, ok := m.comments[comment.ID]; !ok {
		return apperrors.NotFound("comment not found")
	}
	copied := *comment
	m.comments[comment.ID] = &copied
	return nil
}

func (m *mockCommentRepo) DeleteComment(id uint) error {
	if _, ok := m.comments[id]; !ok {
		return apperrors.NotFound("comment not found")
	}
	delete(m.comments, id)
	return nil
}

func (m *mockCommentRepo) GetCommentsByPostID(postID string) ([]models.Comment, error) {
	comments := []models.Comment{}
	for _, c := range m.comments {
		if c.PostID == postID {
			comments = append(comments, *c)
		}
	}
	return comments, nil
}

func (m *mockCommentRepo) GetCommentsByUserID(userID uint) ([]models.Comment, error) {
	comments := []models.Comment{}
	for _, c := range m.comments {
		if c.UserID == userID {
			comments = append(comments, *c)
		}
	}
	return comments, nil
}

func (m *mockCommentRepo) DeleteCommentsForPost(postID string) error {
	for id, c := range m.comments {
		if c.PostID == postID {
			delete(m.comments, id)
		}
	}
	m.deletedPosts = append(m.deletedPosts, postID)
	return nil
}

type mockPostRepo struct {
	posts map[string]*models.Post
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: make(map[string]*models.Post)}
}

func (m *mockPostRepo) CreatePost(_ context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()
	copied := *post
	m.posts[post.ID.Hex()] = &copied
	return nil
}

func (m *mockPostRepo) GetPostByID(_ context.Context, id string) (*models.Post, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, apperrors.NotFound("post not found")
	}
	copied := *p
	return &copied, nil
}

func (m *mockPostRepo) GetAllPosts(_ context.Context, skip, limit int64) ([]models.Post, error) {
	return m.collect(func(*models.Post) bool { return true }), nil
}

func (m *mockPostRepo) GetPostsByUserIDs(_ context.Context, userIDs []uint, skip, limit int64) ([]models.Post, error) {
	allowed := make(map[uint]bool)
	for _, id := range userIDs {
		allowed[id] = true
	}
	return m.collect(func(p *models.Post) bool { return allowed[p.UserID] }), nil
}

func (m *mockPostRepo) GetPostsByIDs(_ context.Context, ids []string) ([]models.Post, error) {
	posts := []models.Post{}
	for _, id := range ids {
		if p, ok := m.posts[id]; ok {
			posts = append(posts, *p)
		}
	}
	return posts, nil
}

func (m *mockPostRepo) UpdatePost(_ context.Context, id string, post *models.Post) error {
	if _, ok := m.posts[id]; !ok {
		return apperrors.NotFound("post not found")
	}
	copied := *post
	m.posts[id] = &copied
	return nil
}

func (m *mockPostRepo) DeletePost(_ context.Context, id string) error {
	if _, ok := m.posts[id]; !ok {
		return apperrors.NotFound("post not found")
	}
	delete(m.posts, id)
	return nil
}

func (m *mockPostRepo) IncrementLikesCount(_ context.Context, postID string, delta int) error {
	if p, ok := m.posts[postID]; ok {
		p.LikesCount += delta
	}
	return nil
}

func (m *mockPostRepo) IncrementCommentsCount(_ context.Context, postID string, delta int) error {
	if p, ok := m.posts[postID]; ok {
		p.CommentsCount += delta
	}
	return nil
}

func (m *mockPostRepo) collect(match func(*models.Post) bool) []models.Post {
	posts := []models.Post{}
	for _, p := range m.posts {
		if match(p) {
			posts = append(posts, *p)
		}
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts
}

type mockMessageRepo struct {
	messages []models.Message
	clock    time.Time
}

func newMockMessageRepo() *mockMessageRepo {
	return &mockMessageRepo{clock: time.Unix(1700000000, 0)}
}

func (m *mockMessageRepo) CreateMessage(_ context.Context, message *models.Message) error {
	message.ID = primitive.NewObjectID()
	m.clock = m.clock.Add(time.Second)
	message.CreatedAt = m.clock
	m.messages = append(m.messages, *message)
	return nil
}

func (m *mockMessageRepo) GetMessagesByConversation(_ context.Context, conversationID string) ([]models.Message, error) {
	messages := []models.Message{}
	for _, msg := range m.messages {
		if msg.ConversationID == conversationID {
			messages = append(messages, msg)
		}
	}
	sort.Slice(messages, func(i, j int) bool { return messages[i].CreatedAt.Before(messages[j].CreatedAt) })
	return messages, nil
}

func (m *mockMessageRepo) GetConversations(_ context.Context, userID uint) ([]models.ConversationSummary, error) {
	latest := make(map[string]models.Message)
	for _, msg := range m.messages {
		if msg.SenderID != userID && msg.RecipientID != userID {
			continue
		}
		if prev, ok := latest[msg.ConversationID]; !ok || msg.CreatedAt.After(prev.CreatedAt) {
			latest[msg.ConversationID] = msg
		}
	}
	summaries := []models.ConversationSummary{}
	for _, msg := range latest {
		peerID := msg.SenderID
		if peerID == userID {
			peerID = msg.RecipientID
		}
		summaries = append(summaries, models.ConversationSummary{PeerID: peerID, LastMessage: msg})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].LastMessage.CreatedAt.After(summaries[j].LastMessage.CreatedAt)
	})
	return summaries, nil
}

// stubFilter treats the literal token "darn" as the only banned term.
type stubFilter struct{}

func (stubFilter) IsProfane(s string) bool {
	return strings.Contains(strings.ToLower(s), "darn")
}

func (stubFilter) Clean(s string) string {
	out := s
	for _, needle := range []string{"darn", "Darn", "DARN"} {
		out = strings.ReplaceAll(out, needle, strings.Repeat("*", len(needle)))
	}
	return out
}
