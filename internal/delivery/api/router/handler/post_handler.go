package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"blog/config"
	"blog/internal/delivery/api/response"
	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/constants"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/usecase"
	"blog/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PostHandler serves the post collection.
type PostHandler struct {
	uc          usecase.PostUsecase
	maxFiles    int
	maxFileSize int64
	logger      *slog.Logger
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
// Upload limits come from the media section; zero values disable the early checks.
func NewPostHandler(uc usecase.PostUsecase, cfg *config.Config, logger *slog.Logger) *PostHandler {
	h := &PostHandler{
		uc:     uc,
		logger: logger,
	}
	if cfg != nil && cfg.Media != nil {
		h.maxFiles = cfg.Media.MaxFiles
		h.maxFileSize = cfg.Media.MaxFileSize
	}

	return h
}

// CreatePost handles POST /blogs. It accepts multipart form data with media files, or plain JSON.
// The author is always the authenticated caller.
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrMissingToken
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid post body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	uploads, err := h.readUploads(c)
	if err != nil {
		return err
	}

	post, err := h.uc.CreatePost(c.Request().Context(), userID, usecase.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
		Uploads: uploads,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, toPostResponse(post))
}

// ListPosts handles GET /blogs.
func (h *PostHandler) ListPosts(c echo.Context) error {
	posts, err := h.uc.ListPosts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toPostResponses(posts))
}

// GetPost handles GET /blogs/:id.
func (h *PostHandler) GetPost(c echo.Context) error {
	id, err := postIDParam(c)
	if err != nil {
		return err
	}

	post, err := h.uc.GetPost(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toPostResponse(post))
}

// UpdatePost handles PUT /blogs/:id.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrMissingToken
	}

	id, err := postIDParam(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid post body")
	}

	post, err := h.uc.UpdatePost(c.Request().Context(), userID, id, usecase.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
		Media:   req.mediaAttachments(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toPostResponse(post))
}

// DeletePost handles DELETE /blogs/:id.
func (h *PostHandler) DeletePost(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrMissingToken
	}

	id, err := postIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeletePost(c.Request().Context(), userID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Blog deleted")
}

// SharePostQR handles GET /blogs/:id/qr.
func (h *PostHandler) SharePostQR(c echo.Context) error {
	id, err := postIDParam(c)
	if err != nil {
		return err
	}

	png, err := h.uc.SharePostQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// postIDParam parses the :id path segment. A malformed id cannot name a post, so it is a 404.
func postIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrPostNotFound.WithDetails("malformed post id")
	}

	return id, nil
}

// readUploads collects the media files of a multipart request. Other content types carry none.
// Count and declared sizes are checked before any file is read into memory.
func (h *PostHandler) readUploads(c echo.Context) ([]usecase.MediaUpload, error) {
	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid multipart body")
	}

	files := form.File[constants.MediaFormField]
	if h.maxFiles > 0 && len(files) > h.maxFiles {
		return nil, domainerrors.ErrTooManyMediaFiles.WithDetails("at most " + strconv.Itoa(h.maxFiles) + " files are allowed")
	}
	for _, fh := range files {
		if h.maxFileSize > 0 && fh.Size > h.maxFileSize {
			return nil, domainerrors.ErrMediaTooLarge.WithDetails(fh.Filename + " exceeds " + util.FormatBytes(h.maxFileSize))
		}
	}

	uploads := make([]usecase.MediaUpload, 0, len(files))
	for _, fh := range files {
		data, err := readFile(fh)
		if err != nil {
			return nil, err
		}

		uploads = append(uploads, usecase.MediaUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get(echo.HeaderContentType),
			Data:        data,
		})
	}

	return uploads, nil
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open upload %s", fh.Filename)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read upload %s", fh.Filename)
	}

	return data, nil
}
