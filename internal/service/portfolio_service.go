package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/sefazor/shootbook-backend/internal/models"
	"github.com/sefazor/shootbook-backend/internal/repository"
	"github.com/sefazor/shootbook-backend/pkg/storage"
	"github.com/sefazor/shootbook-backend/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	MaxPortfolioFileSize = 10 * 1024 * 1024
	MaxPortfolioImages   = 50
)

type PortfolioService struct {
	portfolioRepo    *repository.PortfolioRepository
	photographerRepo *repository.PhotographerRepository
	r2Storage        storage.StorageService
	imgStorage       storage.ImageService
	logger           *zap.Logger
}

func NewPortfolioService(
	portfolioRepo *repository.PortfolioRepository,
	photographerRepo *repository.PhotographerRepository,
	r2Storage storage.StorageService,
	imgStorage storage.ImageService,
	logger *zap.Logger,
) *PortfolioService {
	return &PortfolioService{
		portfolioRepo:    portfolioRepo,
		photographerRepo: photographerRepo,
		r2Storage:        r2Storage,
		imgStorage:       imgStorage,
		logger:           logger.Named("portfolio"),
	}
}

// Upload dosyayı önce R2'ye, sonra Cloudflare Images'a yükler. Herhangi bir
// adım başarısız olursa önceki yüklemeler geri alınır.
func (s *PortfolioService) Upload(ctx context.Context, userID uint, file *multipart.FileHeader) (*models.PortfolioImageResponse, error) {
	p, err := s.photographerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, wrapRepo(err, "photographer profile")
	}

	if file.Size > MaxPortfolioFileSize {
		return nil, validationError("file size too large (max 10MB)")
	}

	count, err := s.portfolioRepo.CountByPhotographer(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if count >= MaxPortfolioImages {
		return nil, fmt.Errorf("%w: portfolio limit of %d images reached", ErrConflict, MaxPortfolioImages)
	}

	contentType, err := detectContentType(file)
	if err != nil {
		return nil, err
	}
	if !utils.IsSupportedImage(contentType) {
		return nil, validationError("invalid file type %s", contentType)
	}

	fileName := utils.SanitizeFileName(file.Filename)
	r2Key := fmt.Sprintf("portfolio/%d/%s%s", p.ID, uuid.NewString(), path.Ext(fileName))

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if err := s.r2Storage.Upload(ctx, r2Key, src, contentType); err != nil {
		return nil, fmt.Errorf("r2 upload failed: %w", err)
	}

	imgSrc, err := file.Open()
	if err != nil {
		s.cleanup(r2Key, "")
		return nil, err
	}
	defer imgSrc.Close()

	imageID, variants, err := s.imgStorage.Upload(ctx, imgSrc, fileName)
	if err != nil {
		s.cleanup(r2Key, "")
		return nil, fmt.Errorf("image upload failed: %w", err)
	}

	image := &models.PortfolioImage{
		PhotographerID: p.ID,
		FileName:       fileName,
		FileSize:       file.Size,
		MimeType:       contentType,
		R2Key:          r2Key,
		ImageID:        imageID,
		Variants:       variants,
		PublicURL:      s.r2Storage.PublicURL(r2Key),
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.portfolioRepo.Create(ctx, image); err != nil {
		s.cleanup(r2Key, imageID)
		return nil, err
	}

	resp := s.toResponse(*image)
	return &resp, nil
}

func (s *PortfolioService) List(ctx context.Context, photographerID uint) ([]models.PortfolioImageResponse, error) {
	images, err := s.portfolioRepo.ListByPhotographer(ctx, photographerID)
	if err != nil {
		return nil, err
	}
	out := make([]models.PortfolioImageResponse, 0, len(images))
	for _, img := range images {
		out = append(out, s.toResponse(img))
	}
	return out, nil
}

// Delete sadece resmin sahibi olan fotoğrafçı silebilir
func (s *PortfolioService) Delete(ctx context.Context, userID, imageID uint) error {
	p, err := s.photographerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return wrapRepo(err, "photographer profile")
	}
	image, err := s.portfolioRepo.GetByID(ctx, imageID)
	if err != nil {
		return wrapRepo(err, "portfolio image")
	}
	if image.PhotographerID != p.ID {
		return fmt.Errorf("%w: image belongs to another photographer", ErrForbidden)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.r2Storage.Delete(gctx, image.R2Key)
	})
	if image.ImageID != "" {
		g.Go(func() error {
			return s.imgStorage.Delete(gctx, image.ImageID)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to delete stored image: %w", err)
	}

	return s.portfolioRepo.Delete(ctx, image.ID)
}

func (s *PortfolioService) toResponse(img models.PortfolioImage) models.PortfolioImageResponse {
	resp := models.PortfolioImageResponse{
		ID:        img.ID,
		FileName:  img.FileName,
		FileSize:  img.FileSize,
		MimeType:  img.MimeType,
		PublicURL: img.PublicURL,
		CreatedAt: img.CreatedAt,
	}
	if img.ImageID != "" {
		resp.PublicURL = s.imgStorage.GetPublicURL(img.ImageID)
		resp.ThumbnailURL = s.imgStorage.GetThumbnailURL(img.ImageID)
	}
	return resp
}

// cleanup istek context'i iptal olmuş olabileceği için kendi timeout'unu kullanır
func (s *PortfolioService) cleanup(r2Key, imageID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if r2Key != "" {
		if err := s.r2Storage.Delete(ctx, r2Key); err != nil {
			s.logger.Warn("r2 cleanup failed", zap.String("key", r2Key), zap.Error(err))
		}
	}
	if imageID != "" {
		if err := s.imgStorage.Delete(ctx, imageID); err != nil {
			s.logger.Warn("image cleanup failed", zap.String("image_id", imageID), zap.Error(err))
		}
	}
}

// detectContentType header yoksa ilk 512 byte'a bakar
func detectContentType(file *multipart.FileHeader) (string, error) {
	if ct := file.Header.Get("Content-Type"); ct != "" && ct != "application/octet-stream" {
		return ct, nil
	}
	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, _ := f.Read(buf)
	return http.DetectContentType(buf[:n]), nil
}
