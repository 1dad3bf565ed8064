package post_service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/logger"
	"blog-service/internal/infrastructure/outbound/metrics/prometheus"
	account_memory "blog-service/internal/infrastructure/outbound/repository/account/memory"
	comment_memory "blog-service/internal/infrastructure/outbound/repository/comment/memory"
	"blog-service/internal/infrastructure/outbound/repository/memory"
	post_memory "blog-service/internal/infrastructure/outbound/repository/post/memory"
	"blog-service/mocks"
)

type fixture struct {
	service  *PostService
	accounts *account_memory.AccountRepository
	posts    *post_memory.PostRepository
	comments *comment_memory.CommentRepository
	alice    *model.Account
	bob      *model.Account
	root     *model.Account
}

func setupPostService(t *testing.T) *fixture {
	t.Helper()
	return setupPostServiceWithUOW(t, nil)
}

func setupPostServiceWithUOW(t *testing.T, uow ports.UnitOfWork) *fixture {
	t.Helper()
	log := logger.New("test")
	f := &fixture{
		accounts: account_memory.NewAccountRepository(log),
		posts:    post_memory.NewPostRepository(log),
		comments: comment_memory.NewCommentRepository(log),
	}
	if uow == nil {
		uow = memory.NewUnitOfWork(f.accounts, f.posts, f.comments)
	}
	f.service = NewPostService(f.posts, f.comments, f.accounts, uow, log, prometheus.NewPrometheusMetricsProvider())

	var err error
	f.alice, err = f.accounts.Create(context.Background(), &model.Account{Username: "alice", PasswordHash: "x"})
	require.NoError(t, err)
	f.bob, err = f.accounts.Create(context.Background(), &model.Account{Username: "bob", PasswordHash: "x"})
	require.NoError(t, err)
	f.root, err = f.accounts.Create(context.Background(), &model.Account{Username: "root", PasswordHash: "x", IsSuperuser: true})
	require.NoError(t, err)
	return f
}

func (f *fixture) createPost(t *testing.T, author *model.Account, title string) *model.PostDetailed {
	t.Helper()
	post, err := f.service.CreatePost(context.Background(), &model.CreatePostDTO{AuthorID: author.ID, Title: title, Content: "body of " + title})
	require.NoError(t, err)
	return post
}

func TestPostService_CreatePost(t *testing.T) {
	f := setupPostService(t)

	tests := []struct {
		name    string
		dto     *model.CreatePostDTO
		wantErr error
	}{
		{
			name: "Success",
			dto:  &model.CreatePostDTO{AuthorID: f.alice.ID, Title: "Hello", Content: "# heading"},
		},
		{
			name:    "Unknown author",
			dto:     &model.CreatePostDTO{AuthorID: 999, Title: "Ghost", Content: "boo"},
			wantErr: custom_errors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.service.CreatePost(context.Background(), tt.dto)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.dto.Title, got.Post.Title)
			assert.Equal(t, tt.dto.Content, got.Post.Content)
			require.NotNil(t, got.Author)
			assert.Equal(t, "alice", got.Author.Username)
			assert.Empty(t, got.Comments)
		})
	}
}

func TestPostService_GetPost(t *testing.T) {
	f := setupPostService(t)
	post := f.createPost(t, f.alice, "First")

	_, err := f.service.AddComment(context.Background(), &model.CreateCommentDTO{PostID: post.Post.ID, AuthorID: f.bob.ID, Content: "nice"})
	require.NoError(t, err)
	_, err = f.service.AddComment(context.Background(), &model.CreateCommentDTO{PostID: post.Post.ID, AuthorID: f.alice.ID, Content: "thanks"})
	require.NoError(t, err)

	got, err := f.service.GetPost(context.Background(), post.Post.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Author.Username)
	require.Len(t, got.Comments, 2)
	assert.Equal(t, "nice", got.Comments[0].Comment.Content)
	assert.Equal(t, "bob", got.Comments[0].Author.Username)
	assert.Equal(t, "thanks", got.Comments[1].Comment.Content)

	_, err = f.service.GetPost(context.Background(), 999)
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
}

func TestPostService_ListPosts(t *testing.T) {
	f := setupPostService(t)
	first := f.createPost(t, f.alice, "First")
	second := f.createPost(t, f.bob, "Second")
	third := f.createPost(t, f.alice, "Third")

	limit := 2
	offset := 2

	tests := []struct {
		name      string
		filters   *model.PostFilters
		wantIDs   []int64
		wantTotal int
	}{
		{name: "Nil filters list everything newest first", filters: nil, wantIDs: []int64{third.Post.ID, second.Post.ID, first.Post.ID}, wantTotal: 3},
		{name: "Filter by author", filters: &model.PostFilters{AuthorID: &f.alice.ID}, wantIDs: []int64{third.Post.ID, first.Post.ID}, wantTotal: 2},
		{name: "First page", filters: &model.PostFilters{Limit: &limit}, wantIDs: []int64{third.Post.ID, second.Post.ID}, wantTotal: 3},
		{name: "Second page", filters: &model.PostFilters{Limit: &limit, Offset: &offset}, wantIDs: []int64{first.Post.ID}, wantTotal: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := f.service.ListPosts(context.Background(), tt.filters)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)

			var ids []int64
			for _, p := range got {
				require.NotNil(t, p.Author)
				assert.Equal(t, p.Post.AuthorID, p.Author.ID)
				ids = append(ids, p.Post.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestPostService_UpdatePost(t *testing.T) {
	f := setupPostService(t)
	post := f.createPost(t, f.alice, "Original")
	title := "Changed"

	tests := []struct {
		name    string
		actor   *model.Account
		id      int64
		update  *model.UpdatePostDTO
		wantErr error
	}{
		{name: "Author updates", actor: f.alice, id: post.Post.ID, update: &model.UpdatePostDTO{Title: &title}},
		{name: "Superuser updates", actor: f.root, id: post.Post.ID, update: &model.UpdatePostDTO{Title: &title}},
		{name: "Other user is denied", actor: f.bob, id: post.Post.ID, update: &model.UpdatePostDTO{Title: &title}, wantErr: custom_errors.ErrForbidden},
		{name: "Anonymous is denied", actor: nil, id: post.Post.ID, update: &model.UpdatePostDTO{Title: &title}, wantErr: custom_errors.ErrForbidden},
		{name: "Post not found", actor: f.root, id: 999, update: &model.UpdatePostDTO{Title: &title}, wantErr: custom_errors.ErrPostNotFound},
		{name: "Nothing to update", actor: f.alice, id: post.Post.ID, update: &model.UpdatePostDTO{}, wantErr: custom_errors.ErrNoUpdateRows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.service.UpdatePost(context.Background(), tt.actor, tt.id, tt.update)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			got, err := f.service.GetPost(context.Background(), tt.id)
			require.NoError(t, err)
			assert.Equal(t, title, got.Post.Title)
			assert.Equal(t, f.alice.ID, got.Post.AuthorID)
		})
	}
}

func TestPostService_DeletePost(t *testing.T) {
	f := setupPostService(t)
	post := f.createPost(t, f.alice, "Doomed")
	other := f.createPost(t, f.bob, "Survivor")

	_, err := f.service.AddComment(context.Background(), &model.CreateCommentDTO{PostID: post.Post.ID, AuthorID: f.bob.ID, Content: "bye"})
	require.NoError(t, err)

	assert.ErrorIs(t, f.service.DeletePost(context.Background(), f.bob, post.Post.ID), custom_errors.ErrForbidden)
	assert.ErrorIs(t, f.service.DeletePost(context.Background(), f.alice, 999), custom_errors.ErrPostNotFound)

	require.NoError(t, f.service.DeletePost(context.Background(), f.alice, post.Post.ID))

	_, err = f.service.GetPost(context.Background(), post.Post.ID)
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	comments, err := f.comments.ListByPost(context.Background(), post.Post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	require.NoError(t, f.service.DeletePost(context.Background(), f.root, other.Post.ID))
}

func TestPostService_DeletePost_Transaction(t *testing.T) {
	tests := []struct {
		name    string
		mocks   func(uow *mocks.UnitOfWork, tx *mocks.Transaction, f *fixture)
		wantErr error
	}{
		{
			name: "Begin fails",
			mocks: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, f *fixture) {
				uow.On("Begin", mock.Anything).Return(nil, errors.New("db down"))
			},
			wantErr: custom_errors.ErrDatabaseTransaction,
		},
		{
			name: "Commit fails and rolls back",
			mocks: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, f *fixture) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("CommentRepository").Return(f.comments)
				tx.On("PostRepository").Return(f.posts)
				tx.On("Commit", mock.Anything).Return(errors.New("serialization failure"))
				tx.On("Rollback", mock.Anything).Return(errors.New("tx is closed"))
			},
			wantErr: custom_errors.ErrDatabaseTransaction,
		},
		{
			name: "Success commits",
			mocks: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, f *fixture) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("CommentRepository").Return(f.comments)
				tx.On("PostRepository").Return(f.posts)
				tx.On("Commit", mock.Anything).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uow := mocks.NewUnitOfWork(t)
			tx := mocks.NewTransaction(t)
			f := setupPostServiceWithUOW(t, uow)
			post := f.createPost(t, f.alice, "Target")
			tt.mocks(uow, tx, f)

			err := f.service.DeletePost(context.Background(), f.alice, post.Post.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPostService_AddComment(t *testing.T) {
	f := setupPostService(t)
	post := f.createPost(t, f.alice, "Commented")

	tests := []struct {
		name    string
		dto     *model.CreateCommentDTO
		wantErr error
	}{
		{name: "Success", dto: &model.CreateCommentDTO{PostID: post.Post.ID, AuthorID: f.bob.ID, Content: "hi"}},
		{name: "Unknown post", dto: &model.CreateCommentDTO{PostID: 999, AuthorID: f.bob.ID, Content: "hi"}, wantErr: custom_errors.ErrPostNotFound},
		{name: "Unknown author", dto: &model.CreateCommentDTO{PostID: post.Post.ID, AuthorID: 999, Content: "hi"}, wantErr: custom_errors.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.service.AddComment(context.Background(), tt.dto)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.dto.Content, got.Comment.Content)
			assert.Equal(t, "bob", got.Author.Username)
		})
	}
}
