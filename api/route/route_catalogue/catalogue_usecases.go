package route_catalogue

import (
	"time"

	"github.com/stagearchive/catalogue/mongo"
	"github.com/stagearchive/catalogue/repository/repository_catalogue"
	"github.com/stagearchive/catalogue/repository/repository_storage"
	"github.com/stagearchive/catalogue/usecase/usecase_catalogue"
)

// CatalogueOptions 用例层配置
type CatalogueOptions struct {
	PageSize       int
	FeedPageSize   int
	BlobBucket     string
	PublicBaseURL  string
	UploadMaxBytes int64
	UploadMaxFiles int
}

// CatalogueUsecases 各路由共享的用例；查询缓存需跨实体共享
type CatalogueUsecases struct {
	Theatres   *usecase_catalogue.TheatreUsecase
	People     *usecase_catalogue.PersonUsecase
	Recordings *usecase_catalogue.RecordingUsecase
	Users      *usecase_catalogue.UserUsecase
	Auth       *usecase_catalogue.AuthUsecase
	Browse     *usecase_catalogue.BrowseUsecase
	Uploads    *usecase_catalogue.UploadUsecase
}

func NewCatalogueUsecases(timeout time.Duration, db mongo.Database, opts CatalogueOptions) (*CatalogueUsecases, error) {
	theatreRepo := repository_catalogue.NewTheatreRepository(db)
	personRepo := repository_catalogue.NewPersonRepository(db)
	recordingRepo := repository_catalogue.NewRecordingRepository(db)
	userRepo := repository_catalogue.NewUserRepository(db)

	blobStore, err := repository_storage.NewGridFSBlobStore(db, opts.BlobBucket, opts.PublicBaseURL)
	if err != nil {
		return nil, err
	}

	cache := usecase_catalogue.NewQueryCache()
	theatres := usecase_catalogue.NewTheatreUsecase(theatreRepo, cache, timeout)
	people := usecase_catalogue.NewPersonUsecase(personRepo, cache, timeout)
	denormalizer := usecase_catalogue.NewRecordingDenormalizer(personRepo, theatreRepo)
	recordings := usecase_catalogue.NewRecordingUsecase(recordingRepo, people, denormalizer, cache, timeout, opts.FeedPageSize)
	users := usecase_catalogue.NewUserUsecase(userRepo, cache, timeout)

	return &CatalogueUsecases{
		Theatres:   theatres,
		People:     people,
		Recordings: recordings,
		Users:      users,
		Auth:       usecase_catalogue.NewAuthUsecase(userRepo, cache, timeout),
		Browse:     usecase_catalogue.NewBrowseUsecase(recordings, people, theatres, users, opts.PageSize),
		Uploads:    usecase_catalogue.NewUploadUsecase(blobStore, opts.UploadMaxBytes, opts.UploadMaxFiles, timeout),
	}, nil
}
