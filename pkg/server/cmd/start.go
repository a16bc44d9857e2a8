/* Copyright 2026 Lectern Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/lectern/lectern/pkg/clock"
	"github.com/lectern/lectern/pkg/server/app"
	"github.com/lectern/lectern/pkg/server/buildinfo"
	"github.com/lectern/lectern/pkg/server/config"
	"github.com/lectern/lectern/pkg/server/controllers"
	"github.com/lectern/lectern/pkg/server/log"
)

func startCmd(args []string) {
	fs := setupFlagSet("start", "lectern-server start")

	appEnv := fs.String("appEnv", "", "Application environment (env: APP_ENV, default: PRODUCTION)")
	port := fs.String("port", "", "Server port (env: PORT, default: 3001)")
	databaseURL := fs.String("databaseUrl", "", "Database URL: a postgres:// URL or a SQLite path (env: DATABASE_URL, default: lectern.db)")
	registerOnlyForAdmin := fs.Bool("registerOnlyForAdmin", false, "Put user registration behind the admin guard (env: REGISTER_ONLY_FOR_ADMIN, default: false)")
	logLevel := fs.String("logLevel", "", "Log level: debug, info, warn, or error (env: LOG_LEVEL, default: info)")

	fs.Parse(args)

	// A .env file is optional; environment variables win.
	godotenv.Load()

	cfg, err := config.New(config.Params{
		AppEnv:               *appEnv,
		Port:                 *port,
		DatabaseURL:          *databaseURL,
		RegisterOnlyForAdmin: *registerOnlyForAdmin,
		LogLevel:             *logLevel,
	})
	if err != nil {
		fmt.Printf("Error: %s\n\n", err)
		fs.Usage()
		os.Exit(1)
	}

	log.SetLevel(cfg.LogLevel)

	a := app.New(initDB(cfg.DatabaseURL), clock.New(), cfg.RegisterOnlyForAdmin)
	defer func() {
		sqlDB, err := a.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}()

	r, err := controllers.NewRouter(a, controllers.New(a))
	if err != nil {
		panic(errors.Wrap(err, "initializing router"))
	}

	log.WithFields(log.Fields{
		"version": buildinfo.Version,
		"port":    cfg.Port,
	}).Info("Lectern server starting")

	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.ErrorWrap(err, "server failed")
		os.Exit(1)
	}
}
