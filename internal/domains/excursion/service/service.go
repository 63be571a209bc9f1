package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"path"
	"slices"
	"time"

	"tourbook/config"
	"tourbook/infras/otel"
	"tourbook/infras/s3"
	"tourbook/internal/domains/excursion/model"
	"tourbook/internal/domains/excursion/model/dto"
	"tourbook/internal/domains/excursion/repository"
	"tourbook/shared/base64"
	"tourbook/shared/constant"
	"tourbook/shared/failure"
	"tourbook/shared/lookup"
	"tourbook/shared/notification"
	"tourbook/shared/operation"
	"tourbook/shared/store"
	"tourbook/shared/timezone"
	"tourbook/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

type Excursion interface {
	Load(ctx context.Context) error
	Create(ctx context.Context, req dto.CreateExcursionRequest) (model.Excursion, error)
	Get(ctx context.Context, id string) (model.Excursion, bool)
	Update(ctx context.Context, id string, req dto.UpdateExcursionRequest) (model.Excursion, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter dto.ExcursionFilter) []model.Excursion
	ByCategory(ctx context.Context, category string) []model.Excursion
	ByLocation(ctx context.Context, location string) []model.Excursion
	Featured(ctx context.Context) []model.Excursion
	Active(ctx context.Context) []model.Excursion
	Categories(ctx context.Context) []string
	Locations(ctx context.Context) []string
	UploadImage(ctx context.Context, id string, req dto.UploadImageRequest) (model.Excursion, error)
	RemoveImage(ctx context.Context, id, imageURL string) (model.Excursion, error)
	Status(ctx context.Context) store.Status
}

type serviceImpl struct {
	repo    repository.Excursion
	seeder  store.Seeder[model.Excursion]
	storage s3.S3
	runner  operation.Runner
	cfg     *config.Config
	otel    otel.Otel
}

func New(
	repo repository.Excursion,
	seeder store.Seeder[model.Excursion],
	storage s3.S3,
	runner operation.Runner,
	cfg *config.Config,
	otel otel.Otel,
) Excursion {
	return &serviceImpl{
		repo:    repo,
		seeder:  seeder,
		storage: storage,
		runner:  runner,
		cfg:     cfg,
		otel:    otel,
	}
}

func (s *serviceImpl) Load(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".excursion.Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	delay := time.Duration(s.cfg.App.Latency.LoadMillis) * time.Millisecond

	if err = s.repo.Store().Load(ctx, s.seeder, delay); err != nil {
		log.Error().Err(err).Msg("failed to load excursions")

		return fmt.Errorf("failed to load excursions: %w", err)
	}

	log.Info().Int("count", s.repo.Count(ctx)).Msg("excursions loaded")

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateExcursionRequest) (res model.Excursion, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".excursion.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.runner.Run(ctx, s.repo.Store(), store.OperationCreate, func(ctx context.Context) (notification.Notification, error) {
		if err := validator.ValidateStruct(&req); err != nil {
			return notification.Notification{}, err
		}

		res, err = s.repo.Insert(ctx, func(_ []model.Excursion) (model.Excursion, error) {
			return req.ToModel(timezone.Now()), nil
		})
		if err != nil {
			return notification.Notification{}, err
		}

		return notification.Success("Excursión creada", fmt.Sprintf("%s ha sido publicada", res.Nombre)), nil
	})

	return res, err
}

func (s *serviceImpl) Get(ctx context.Context, id string) (model.Excursion, bool) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".excursion.Get")
	defer scope.End()

	return s.repo.Get(ctx, id)
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateExcursionRequest) (res model.Excursion, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".excursion.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.runner.Run(ctx, s.repo.Store(), store.OperationUpdate, func(ctx context.Context) (notification.Notification, error) {
		if err := validator.ValidateStruct(&req); err != nil {
			return notification.Notification{}, err
		}

		res, err = s.repo.Update(ctx, id, func(current model.Excursion) (model.Excursion, error) {
			return req.Apply(current), nil
		})
		if err != nil {
			return notification.Notification{}, err
		}

		return notification.Success("Excursión actualizada", fmt.Sprintf("Los cambios en %s han sido guardados", res.Nombre)), nil
	})

	return res, err
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".excursion.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.runner.Run(ctx, s.repo.Store(), store.OperationDelete, func(ctx context.Context) (notification.Notification, error) {
		removed, err := s.repo.Delete(ctx, id)
		if err != nil {
			return notification.Notification{}, err
		}

		return notification.Success("Excursión eliminada", fmt.Sprintf("%s ha sido eliminada", removed.Nombre)), nil
	})
}

func (s *serviceImpl) List(ctx context.Context, filter dto.ExcursionFilter) []model.Excursion {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".excursion.List")
	defer scope.End()

	return s.repo.GetAll(ctx, model.ByCategory(filter.Categoria), model.ByLocation(filter.Ubicacion))
}

func (s *serviceImpl) ByCategory(ctx context.Context, category string) []model.Excursion {
	return s.repo.GetAll(ctx, model.ByCategory(category))
}

func (s *serviceImpl) ByLocation(ctx context.Context, location string) []model.Excursion {
	return s.repo.GetAll(ctx, model.ByLocation(location))
}

func (s *serviceImpl) Featured(ctx context.Context) []model.Excursion {
	return s.repo.GetAll(ctx, model.Featured())
}

func (s *serviceImpl) Active(ctx context.Context) []model.Excursion {
	return s.repo.GetAll(ctx, model.Active())
}

// Categories returns the distinct categories in catalog order.
func (s *serviceImpl) Categories(ctx context.Context) []string {
	return lookup.Distinct(s.repo.GetAll(ctx), model.Category)
}

// Locations returns the distinct locations in catalog order.
func (s *serviceImpl) Locations(ctx context.Context) []string {
	return lookup.Distinct(s.repo.GetAll(ctx), model.Location)
}

// UploadImage stores the image and attaches its URL. The first image becomes
// the primary one, later ones go to the gallery.
func (s *serviceImpl) UploadImage(ctx context.Context, id string, req dto.UploadImageRequest) (res model.Excursion, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".excursion.UploadImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.runner.Run(ctx, s.repo.Store(), store.OperationUpdate, func(ctx context.Context) (notification.Notification, error) {
		if err := validator.ValidateStruct(&req); err != nil {
			return notification.Notification{}, err
		}

		if _, ok := s.repo.Get(ctx, id); !ok {
			return notification.Notification{}, failure.NotFound(model.EntityName + " not found")
		}

		contentType, data, err := base64.Decode(req.Imagen)
		if err != nil {
			return notification.Notification{}, failure.BadRequest(err)
		}

		fileName := fmt.Sprintf("%s.%s", uuid.NewString(), imageExtensions[contentType])
		directory := path.Join(model.ImageDir, id)

		url, err := s.storage.UploadFileBytes(ctx, directory, fileName, contentType, data)
		if err != nil {
			return notification.Notification{}, err
		}

		res, err = s.repo.Update(ctx, id, func(current model.Excursion) (model.Excursion, error) {
			if current.Imagen == constant.Empty {
				current.Imagen = url
			} else {
				current.Imagenes = append(slices.Clone(current.Imagenes), url)
			}

			return current, nil
		})
		if err != nil {
			s.discard(ctx, path.Join(directory, fileName))

			return notification.Notification{}, err
		}

		return notification.Success("Imagen subida", fmt.Sprintf("Se agregó una imagen a %s", res.Nombre)), nil
	})

	return res, err
}

// RemoveImage detaches an image URL. Removing the primary image promotes the
// first gallery image in its place.
func (s *serviceImpl) RemoveImage(ctx context.Context, id, imageURL string) (res model.Excursion, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".excursion.RemoveImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.runner.Run(ctx, s.repo.Store(), store.OperationUpdate, func(ctx context.Context) (notification.Notification, error) {
		res, err = s.repo.Update(ctx, id, func(current model.Excursion) (model.Excursion, error) {
			return detachImage(current, imageURL)
		})
		if err != nil {
			return notification.Notification{}, err
		}

		if key := s.storage.GetObjectKeyFromURL(imageURL); key != constant.Empty {
			s.discard(ctx, key)
		}

		return notification.Success("Imagen eliminada", fmt.Sprintf("Se quitó una imagen de %s", res.Nombre)), nil
	})

	return res, err
}

func (s *serviceImpl) Status(_ context.Context) store.Status {
	return s.repo.Store().Status()
}

// discard removes an uploaded object. Failures leave an orphan object and are only logged.
func (s *serviceImpl) discard(ctx context.Context, key string) {
	if err := s.storage.DeleteFile(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to remove excursion image from storage")
	}
}

func detachImage(e model.Excursion, imageURL string) (model.Excursion, error) {
	if imageURL != constant.Empty && e.Imagen == imageURL {
		e.Imagen = constant.Empty

		if len(e.Imagenes) > 0 {
			e.Imagen = e.Imagenes[0]
			e.Imagenes = slices.Clone(e.Imagenes[1:])
		}

		return e, nil
	}

	idx := slices.Index(e.Imagenes, imageURL)
	if imageURL == constant.Empty || idx == -1 {
		return e, failure.NotFound("image not found")
	}

	e.Imagenes = slices.Delete(slices.Clone(e.Imagenes), idx, idx+1)

	return e, nil
}
