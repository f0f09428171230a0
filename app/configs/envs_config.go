package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBPort             string
	Port               string
	CorsOrigin         string
	StrictCategoryRefs bool
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	env := ENV{
		DBHost:             os.Getenv("DB_HOST"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		DBPort:             os.Getenv("DB_PORT"),
		Port:               os.Getenv("APP_PORT"),
		CorsOrigin:         os.Getenv("CORS_ORIGIN"),
		StrictCategoryRefs: os.Getenv("STRICT_CATEGORY_REFS") == "true",
	}

	if env.Port == "" {
		env.Port = ":3000"
	}
	if env.CorsOrigin == "" {
		env.CorsOrigin = "http://localhost:5173"
	}

	return env
}
