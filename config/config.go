package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

// App holds the env-driven settings that are not connection handles.
type App struct {
	Addr          string
	MenuURL       string
	VNPayTmnCode  string
	VNPaySecret   string
	VNPayEndpoint string
	VNPayReturn   string
	MoMoPartner   string
	MoMoAccessKey string
	MoMoSecretKey string
	MoMoEndpoint  string
	MoMoRedirect  string
	MoMoIPN       string
}

func Load() App {
	return App{
		Addr:          getEnv("HTTP_ADDR", ":8080"),
		MenuURL:       getEnv("MENU_URL", "http://localhost:3000"),
		VNPayTmnCode:  os.Getenv("VNPAY_TMN_CODE"),
		VNPaySecret:   os.Getenv("VNPAY_HASH_SECRET"),
		VNPayEndpoint: getEnv("VNPAY_ENDPOINT", "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html"),
		VNPayReturn:   os.Getenv("VNPAY_RETURN_URL"),
		MoMoPartner:   os.Getenv("MOMO_PARTNER_CODE"),
		MoMoAccessKey: os.Getenv("MOMO_ACCESS_KEY"),
		MoMoSecretKey: os.Getenv("MOMO_SECRET_KEY"),
		MoMoEndpoint:  getEnv("MOMO_ENDPOINT", "https://test-payment.momo.vn/v2/gateway/api/create"),
		MoMoRedirect:  os.Getenv("MOMO_REDIRECT_URL"),
		MoMoIPN:       os.Getenv("MOMO_IPN_URL"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(os.Getenv("KAFKA_BROKER")),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}
