package main

import (
	"context"
	"log"
	"time"

	"tranhart-io/api/internal/indexes"
	"tranhart-io/api/internal/routers"
	"tranhart-io/api/pkg/services"
	"tranhart-io/api/pkg/util"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := indexes.Ensure(ctx, util.DB.Database("tranhart")); err != nil {
		log.Fatal(err)
	}

	seedAdmin(ctx)

	router := routers.InitRoute()

	port := util.LoadEnvFor("PORT")
	if port == "" {
		port = "8080"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

// seedAdmin bootstraps the first admin account from the environment so a
// fresh deployment has someone who can log in.
func seedAdmin(ctx context.Context) {
	email := util.LoadEnvFor("ADMIN_EMAIL")
	password := util.LoadEnvFor("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	name := util.LoadEnvFor("ADMIN_NAME")
	if name == "" {
		name = "Administrator"
	}

	if err := services.NewUserService().SeedAdmin(ctx, name, email, password); err != nil {
		log.Fatal(err)
	}
}
