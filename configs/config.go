package configs

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBUser        string
	DBPass        string
	DBHost        string
	DBName        string
	JWTSecret     string
	JWTTTL        time.Duration
	PaymentSecret string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from process environment")
	}

	return &Config{
		Port:          getEnv("PORT", "5000"),
		DBUser:        os.Getenv("DB_USER"),
		DBPass:        os.Getenv("DB_PASS"),
		DBHost:        getEnv("DB_HOST", "cluster0.mp2awoi.mongodb.net"),
		DBName:        getEnv("DB_NAME", "BistroDB"),
		JWTSecret:     getEnv("SECRET_KEY", "changeme"),
		JWTTTL:        time.Hour,
		PaymentSecret: os.Getenv("PAYMENT_SECRET"),
	}
}

// MongoURI builds the Atlas connection string from the env-supplied
// credentials.
func (c *Config) MongoURI() string {
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		c.DBUser, c.DBPass, c.DBHost)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
