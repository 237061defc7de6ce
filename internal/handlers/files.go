package handlers

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"telemedicine-platform-server/internal/config"
	"telemedicine-platform-server/internal/guard"
	"telemedicine-platform-server/internal/middleware"
	"telemedicine-platform-server/internal/models"
	"telemedicine-platform-server/internal/store"
	"telemedicine-platform-server/internal/utils"
)

// FileHandler handles file upload and retrieval requests.
type FileHandler struct {
	Store *store.Store
	Cfg   *config.Config
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(s *store.Store, cfg *config.Config) *FileHandler {
	return &FileHandler{Store: s, Cfg: cfg}
}

// UploadFile handles a multipart upload. The file lands on disk under
// the upload directory with a generated name; the optional relation
// tag must name a known entity kind together with an id, or be absent.
func (h *FileHandler) UploadFile(c *gin.Context) {
	identity, exists := middleware.CurrentIdentity(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequest(c, "No file uploaded")
		return
	}

	if fileHeader.Size > h.Cfg.MaxUploadBytes {
		utils.BadRequest(c, fmt.Sprintf("File exceeds the %d byte limit", h.Cfg.MaxUploadBytes))
		return
	}

	relatedToKind := models.FileRelationKind(c.PostForm("relatedToKind"))
	relatedToID := c.PostForm("relatedToId")
	if (relatedToKind == "") != (relatedToID == "") {
		utils.BadRequest(c, "relatedToKind and relatedToId must be provided together")
		return
	}
	if relatedToKind != "" && !models.ValidFileRelationKind(relatedToKind) {
		utils.BadRequest(c, "Unknown relatedToKind")
		return
	}

	storedName := "file-" + uuid.New().String() + filepath.Ext(fileHeader.Filename)
	storedPath := filepath.Join(h.Cfg.UploadDir, storedName)

	if err := c.SaveUploadedFile(fileHeader, storedPath); err != nil {
		log.Printf("upload: saving file: %v", err)
		utils.InternalServerError(c, "Failed to upload file")
		return
	}

	file := models.File{
		OwnerID:       identity.UserID,
		RelatedToKind: relatedToKind,
		RelatedToID:   relatedToID,
		FileName:      storedName,
		OriginalName:  fileHeader.Filename,
		MimeType:      fileHeader.Header.Get("Content-Type"),
		Size:          fileHeader.Size,
		Path:          storedPath,
	}

	if err := h.Store.SaveFile(&file); err != nil {
		log.Printf("upload: saving record: %v", err)
		utils.InternalServerError(c, "Failed to upload file")
		return
	}

	utils.Created(c, "File uploaded successfully", file)
}

// GetFiles handles listing the caller's uploaded files.
func (h *FileHandler) GetFiles(c *gin.Context) {
	identity, exists := middleware.CurrentIdentity(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	files, err := h.Store.FilesByOwner(identity.UserID)
	if err != nil {
		log.Printf("files listing: %v", err)
		utils.InternalServerError(c, "Failed to fetch files")
		return
	}

	utils.Success(c, "Files fetched successfully", files)
}

// GetRelatedFiles handles listing files attached to an entity. Results
// are limited to files the caller owns; the relation is a lookup hint,
// not an access grant.
func (h *FileHandler) GetRelatedFiles(c *gin.Context) {
	identity, exists := middleware.CurrentIdentity(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	kind := models.FileRelationKind(c.Param("type"))
	if !models.ValidFileRelationKind(kind) {
		utils.BadRequest(c, "Unknown relation type")
		return
	}

	files, err := h.Store.FilesByRelation(kind, c.Param("id"))
	if err != nil {
		log.Printf("related files: %v", err)
		utils.InternalServerError(c, "Failed to fetch related files")
		return
	}

	owned := []models.File{}
	for _, f := range files {
		if guard.CanAccessFile(identity, &f) == nil {
			owned = append(owned, f)
		}
	}

	utils.Success(c, "Related files fetched successfully", owned)
}

// DownloadFile serves the stored file content. Owner-only.
func (h *FileHandler) DownloadFile(c *gin.Context) {
	identity, exists := middleware.CurrentIdentity(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	file, err := h.Store.GetFile(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "File not found")
		} else {
			log.Printf("download: fetching: %v", err)
			utils.InternalServerError(c, "Failed to fetch file")
		}
		return
	}

	if err := guard.CanAccessFile(identity, file); err != nil {
		utils.Forbidden(c, err.Error())
		return
	}

	c.FileAttachment(file.Path, file.OriginalName)
}
