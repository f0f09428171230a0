package main

import (
	"log"
	"net/http"
	"os"

	"github.com/Santander-alt/catalogo/app/cmd"
	"github.com/Santander-alt/catalogo/app/configs"
	"github.com/Santander-alt/catalogo/app/routes"
)

func main() {

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli(env)
		return
	}

	db, err := configs.OpenConnection(env)
	if err != nil {
		log.Fatal("DB connection failed:", err)

	}
	log.Println("✅ Database connected.")

	handler := routes.NewRouter(db, env)

	server := http.Server{
		Addr:    env.Port,
		Handler: handler,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to connecting to the server")
	}

}
