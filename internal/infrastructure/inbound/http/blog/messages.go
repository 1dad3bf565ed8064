package blog_http

const (
	MsgUsernameExists     = "Username already exists!"
	MsgUserRegistered     = "User registered successfully!"
	MsgInvalidCredentials = "Invalid username or password!"
	MsgDeleteUserDenied   = "You dont have permission to delete user"
	MsgUserDeleted        = "User deleted successfully!"
	MsgUpdateUserDenied   = "You dont have permission to update this user"
	MsgPasswordUpdated    = "Password updated successfully!"
	MsgCreateOwnPost      = "You can create your own post."
	MsgPostCreated        = "Post created successfully!"
	MsgCommentAdded       = "Comment added successfully!"
	MsgEditPostDenied     = "You don't have permission to edit this post."
	MsgPostUpdated        = "Post updated successfully!"
	MsgPostDeleted        = "Post deleted successfully!"
	MsgDeletePostDenied   = "You don't have permission to delete this post."
)

const (
	TemplateRegister   = "register.html"
	TemplateLogin      = "login.html"
	TemplateUpdateUser = "update.html"
	TemplateContext    = "context.html"
	TemplatePostList   = "post_list.html"
	TemplatePostForm   = "post_form.html"
	TemplatePostDetail = "post_detail.html"
)
