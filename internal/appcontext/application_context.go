package appcontext

import (
	"context"
	"log"
	"os"

	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/RoyceAzure/lab/storefront/internal/export"
	"github.com/RoyceAzure/lab/storefront/internal/infra/cache"
	redis_cache "github.com/RoyceAzure/lab/storefront/internal/infra/cache/redis"
	"github.com/RoyceAzure/lab/storefront/internal/infra/producer"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type ApplicationContext struct {
	Cf              *config.Config
	Logger          zerolog.Logger
	DbConn          *gorm.DB
	DbDao           *db.DbDao
	RedisClient     *redis.Client
	DraftCache      cache.Cache
	CustomerRepo    *db.CustomerRepo
	ProductRepo     *db.ProductRepo
	OrderRepo       *db.OrderRepo
	DispatchRepo    *db.DispatchRepo
	DraftRepo       *redis_repo.DraftRepo
	OrderProducer   *producer.OrderEventProducer
	CustomerService service.ICustomerService
	ProductService  service.IProductService
	DraftService    *service.DraftService
	OrderService    *service.OrderService
	DispatchService service.IDispatchService
	Exporter        *export.Exporter
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	err := app.Init()
	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (app *ApplicationContext) Init() error {
	app.setUpLogger()

	err := app.setUpDbConn()
	if err != nil {
		return err
	}

	err = app.setUpRedis()
	if err != nil {
		return err
	}

	app.setUpRepos()
	app.setUpProducer()

	err = app.setUpServices()
	if err != nil {
		return err
	}

	return nil
}

func (app *ApplicationContext) setUpLogger() {
	app.Logger = zerolog.New(os.Stdout).With().
		Timestamp().
		Str("moduler", app.Cf.ModulerName).
		Logger()
}

func (app *ApplicationContext) setUpDbConn() error {
	log.Printf("Start setup database connection")
	conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	if err != nil {
		return err
	}
	app.DbConn = conn
	app.DbDao = db.NewDbDao(conn)

	err = app.DbDao.InitMigrate()
	if err != nil {
		return err
	}
	log.Printf("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpRedis() error {
	log.Printf("Start setup redis")
	app.RedisClient = redis.NewClient(&redis.Options{
		Addr:     app.Cf.RedisAddr,
		Password: app.Cf.RedisPassword,
		DB:       app.Cf.RedisDB,
	})
	app.DraftCache = redis_cache.NewRedisCache(app.RedisClient, "storefront")
	log.Printf("Finish setup redis")
	return nil
}

func (app *ApplicationContext) setUpRepos() {
	log.Printf("Start setup repositories")
	app.CustomerRepo = db.NewCustomerRepo(app.DbDao)
	app.ProductRepo = db.NewProductRepo(app.DbDao)
	app.OrderRepo = db.NewOrderRepo(app.DbDao)
	app.DispatchRepo = db.NewDispatchRepo(app.DbDao)
	app.DraftRepo = redis_repo.NewDraftRepo(app.DraftCache, app.Logger)
	log.Printf("Finish setup repositories")
}

// 沒有設置broker時不發佈事件
func (app *ApplicationContext) setUpProducer() {
	brokers := app.Cf.KafkaBrokerList()
	if len(brokers) == 0 {
		log.Printf("kafka brokers not set, order events disabled")
		return
	}

	log.Printf("Start setup order event producer")
	app.OrderProducer = producer.NewOrderEventProducer(brokers, app.Cf.KafkaTopic)
	log.Printf("Finish setup order event producer")
}

func (app *ApplicationContext) setUpServices() error {
	log.Printf("Start setup services")
	app.CustomerService = service.NewCustomerService(app.CustomerRepo)
	app.ProductService = service.NewProductService(app.ProductRepo)

	drafts, err := service.NewDraftService(context.Background(), app.DraftRepo, app.Logger)
	if err != nil {
		return err
	}
	app.DraftService = drafts

	var emitter service.IOrderEventEmitter
	if app.OrderProducer != nil {
		emitter = app.OrderProducer
	}
	app.OrderService = service.NewOrderService(app.OrderRepo, app.CustomerRepo, app.DraftService, emitter, app.Logger)
	app.DispatchService = service.NewDispatchService(app.DispatchRepo, app.OrderRepo)
	app.Exporter = export.NewExporter(export.NopRenderer{}, export.NopSharer{}, app.Logger)
	log.Printf("Finish setup services")
	return nil
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	if app.OrderProducer != nil {
		if err := app.OrderProducer.Close(); err != nil {
			return err
		}
	}
	if app.RedisClient != nil {
		if err := app.RedisClient.Close(); err != nil {
			return err
		}
	}
	if app.DbConn != nil {
		sqlDB, err := app.DbConn.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
