package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/joblyhq/jobly/pkg/auth"
	"github.com/joblyhq/jobly/pkg/config"
	"github.com/joblyhq/jobly/pkg/database"
	"github.com/joblyhq/jobly/pkg/migrations"
	"github.com/robinjoseph08/golib/logger"
)

func main() {
	ctx := context.Background()
	log := logger.New()

	var opts struct {
		Username string `short:"u" long:"username" description:"Username of the admin" required:"true"`
		Password string `short:"p" long:"password" description:"Password of the admin" required:"true"`
		Email    string `long:"email" description:"Email address of the admin"`
	}

	_, err := flags.Parse(&opts)
	if err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		log.Err(err).Fatal("flags parse error")
	}

	cfg, err := config.New()
	if err != nil {
		log.Err(err).Fatal("config error")
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Err(err).Fatal("database error")
	}
	defer db.Close()

	if _, err := migrations.BringUpToDate(ctx, db); err != nil {
		log.Err(err).Fatal("migrations error")
	}

	authService := auth.NewService(db, cfg.JWTSecret)
	user, created, err := authService.EnsureAdmin(ctx, auth.RegisterOptions{
		Username:  opts.Username,
		Password:  opts.Password,
		FirstName: "Admin",
		LastName:  "User",
		Email:     opts.Email,
	})
	if err != nil {
		log.Err(err).Fatal("create admin error")
	}

	if created {
		fmt.Printf("Created admin %s (id %d)\n", user.Username, user.ID)
	} else {
		fmt.Printf("Promoted %s to admin and reset their password\n", user.Username)
	}
}
