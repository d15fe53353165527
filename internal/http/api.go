package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"miniblog/internal/auth"
	"miniblog/internal/domain"
	"miniblog/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users  service.UserService
	blogs  service.BlogService
	tokens *auth.TokenService
	logger *logrus.Logger
}

func NewHandler(users service.UserService, blogs service.BlogService, tokens *auth.TokenService, logger *logrus.Logger) *Handler {
	return &Handler{
		users:  users,
		blogs:  blogs,
		tokens: tokens,
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())
	router.Use(requestLogger(h.logger))

	user := router.Group("/user")
	{
		user.POST("/signup", h.signup)
		user.POST("/signin", h.signin)
	}

	blog := router.Group("/blog")
	blog.Use(authRequired(h.tokens))
	{
		blog.POST("/create", h.createBlog)
		blog.PUT("/update/:blogId", h.updateBlog)
		blog.DELETE("/delete/:blogId", h.deleteBlog)
		blog.GET("/myblogs", h.myBlogs)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})
}

type signupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type blogRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type BlogResponse struct {
	ID          string `json:"id"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func (h *Handler) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if fieldErrs := validateSignup(req); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signup data", "details": fieldErrs})
		return
	}

	user, err := h.users.SignUp(c.Request.Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
			return
		}
		h.internalError(c, "signup", err)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.internalError(c, "issue token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": userToResponse(user)})
}

func (h *Handler) signin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if fieldErrs := validateSignin(req); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signin data", "details": fieldErrs})
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid credentials"})
			return
		}
		h.internalError(c, "signin", err)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.internalError(c, "issue token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": userToResponse(user)})
}

func (h *Handler) createBlog(c *gin.Context) {
	var req blogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if fieldErrs := validateBlogBody(req); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blog data", "details": fieldErrs})
		return
	}

	blog, err := h.blogs.Create(c.Request.Context(), currentUserID(c), req.Title, req.Description)
	if err != nil {
		h.internalError(c, "create blog", err)
		return
	}

	c.JSON(http.StatusCreated, blogToResponse(*blog))
}

func (h *Handler) updateBlog(c *gin.Context) {
	blogID, ok := blogIDParam(c)
	if !ok {
		return
	}

	var req blogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if fieldErrs := validateBlogBody(req); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blog data", "details": fieldErrs})
		return
	}

	blog, err := h.blogs.Update(c.Request.Context(), currentUserID(c), blogID, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "blog not found"})
			return
		}
		h.internalError(c, "update blog", err)
		return
	}

	c.JSON(http.StatusOK, blogToResponse(*blog))
}

func (h *Handler) deleteBlog(c *gin.Context) {
	blogID, ok := blogIDParam(c)
	if !ok {
		return
	}

	if err := h.blogs.Delete(c.Request.Context(), currentUserID(c), blogID); err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "blog not found"})
			return
		}
		h.internalError(c, "delete blog", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": blogID})
}

func (h *Handler) myBlogs(c *gin.Context) {
	blogs, err := h.blogs.ListByAuthor(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.internalError(c, "list blogs", err)
		return
	}

	resp := make([]BlogResponse, len(blogs))
	for i := range blogs {
		resp[i] = blogToResponse(blogs[i])
	}
	c.JSON(http.StatusOK, resp)
}

// blogIDParam validates the :blogId path segment before any store access.
func blogIDParam(c *gin.Context) (string, bool) {
	id := c.Param("blogId")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blog id"})
		return "", false
	}
	return id, true
}

// internalError hides store/infra faults behind an opaque 500.
func (h *Handler) internalError(c *gin.Context, op string, err error) {
	h.logger.WithError(err).Errorf("%s failed", op)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}

func blogToResponse(blog domain.Blog) BlogResponse {
	return BlogResponse{
		ID:          blog.ID,
		Author:      blog.AuthorID,
		Title:       blog.Title,
		Description: blog.Description,
		CreatedAt:   blog.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   blog.UpdatedAt.Format(time.RFC3339),
	}
}
