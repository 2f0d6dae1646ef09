package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cloud-storage-api/internal/application/ports"
	domain "cloud-storage-api/internal/domain/user"
	"cloud-storage-api/internal/errs"
	fileDto "cloud-storage-api/internal/interface/api/rest/dto/file"
	"cloud-storage-api/internal/interface/api/rest/middleware"
	"cloud-storage-api/internal/interface/api/rest/validator"
)

type FileController struct {
	fileService ports.FileService
	logger      *zap.Logger
	maxSize     int64
}

func NewFileController(
	r *gin.Engine,
	fileService ports.FileService,
	logger *zap.Logger,
	tokens ports.TokenAuthority,
	maxSize int64,
) *FileController {
	fc := &FileController{
		fileService: fileService,
		logger:      logger,
		maxSize:     maxSize,
	}

	auth := middleware.AuthMiddleware(tokens)
	r.POST(RouteFile, auth, fc.UploadFileHandler)
	r.GET(RouteFile, auth, fc.DownloadFileHandler)
	r.PUT(RouteFile, auth, fc.RenameFileHandler)
	r.DELETE(RouteFile, auth, fc.DeleteFileHandler)
	r.GET(RouteList, auth, fc.ListFilesHandler)

	return fc
}

func callerID(c *gin.Context) domain.ID {
	return domain.ID(c.GetUint64(middleware.CtxUserID))
}

func (fc *FileController) UploadFileHandler(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	// empty payloads fall through to admission, which rejects them as 400
	if fh.Size > fc.maxSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is unreadable"})
		return
	}
	defer f.Close()

	payload, err := io.ReadAll(f)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to read the file"},
		)
		fc.logger.Error("upload read error", zap.Error(err))
		return
	}

	uploaded, err := fc.fileService.Upload(c.Request.Context(), callerID(c), fh.Filename, payload)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidArgument):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, errs.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to upload the file"},
			)
			fc.logger.Error("Upload() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Success upload",
		"filename": uploaded.Filename,
		"checksum": uploaded.Checksum,
	})
}

func (fc *FileController) DownloadFileHandler(c *gin.Context) {
	filename := c.Query("filename")
	if err := validator.ValidateFilename(filename); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := fc.fileService.Download(c.Request.Context(), filename)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to download the file"},
		)
		fc.logger.Error("Download() error", zap.Error(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/octet-stream", data)
}

func (fc *FileController) RenameFileHandler(c *gin.Context) {
	oldFilename := c.Query("filename")
	if err := validator.ValidateFilename(oldFilename); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req fileDto.RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := validator.ValidateFilename(req.Filename); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := fc.fileService.Rename(c.Request.Context(), callerID(c), oldFilename, req.Filename); err != nil {
		fc.writeFileError(c, err, "Rename()")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success"})
}

func (fc *FileController) ListFilesHandler(c *gin.Context) {
	limit, err := validator.ValidateLimit(c.Query("limit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	infos, err := fc.fileService.ListForOwner(c.Request.Context(), callerID(c), limit)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get files"},
		)
		fc.logger.Error("ListForOwner() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, fileDto.ToResponseFileInfos(infos))
}

func (fc *FileController) DeleteFileHandler(c *gin.Context) {
	filename := c.Query("filename")
	if err := validator.ValidateFilename(filename); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := fc.fileService.Delete(c.Request.Context(), callerID(c), filename); err != nil {
		fc.writeFileError(c, err, "Delete()")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success delete"})
}

func (fc *FileController) writeFileError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, errs.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "you don't have permission for this file"})
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
	case errors.Is(err, errs.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "file operation failed"},
		)
		fc.logger.Error(op+" error", zap.Error(err))
	}
}
