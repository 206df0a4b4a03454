/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/wso2/openbanking-selfcare-service/internal/consent/provider"
	"github.com/wso2/openbanking-selfcare-service/internal/permission/catalog"
	permissionService "github.com/wso2/openbanking-selfcare-service/internal/permission/service"
	"github.com/wso2/openbanking-selfcare-service/internal/system/client"
	"github.com/wso2/openbanking-selfcare-service/internal/system/config"
	"github.com/wso2/openbanking-selfcare-service/internal/system/constants"
	systemContext "github.com/wso2/openbanking-selfcare-service/internal/system/context"
	"github.com/wso2/openbanking-selfcare-service/internal/system/log"
	"github.com/wso2/openbanking-selfcare-service/internal/system/managers"
	"github.com/wso2/openbanking-selfcare-service/internal/system/metrics"
	"github.com/wso2/openbanking-selfcare-service/internal/system/schedulers"
	"github.com/wso2/openbanking-selfcare-service/internal/system/utils"
)

func main() {
	scpHome := getSCPHome()

	envFiles, err := filepath.Glob(filepath.Join(scpHome, "config", "*.env"))
	if err == nil && len(envFiles) > 0 {
		_ = godotenv.Load(envFiles...)
	}

	// Load the configuration file
	scpConfig, err := config.LoadConfig(scpHome, constants.ConfigFile)
	if err != nil {
		fatal("Failed to load configuration", err)
	}

	// Initialize runtime configurations.
	if err := config.InitializeRuntime(scpHome, scpConfig); err != nil {
		fatal("Failed to initialize runtime", err)
	}

	if err := log.Init(scpConfig.Log.LogLevel); err != nil {
		fatal("Failed to initialize logger", err)
	}
	logger := log.GetLogger()

	catalogPath := scpConfig.Portal.CatalogFile
	if catalogPath != "" && !filepath.IsAbs(catalogPath) {
		catalogPath = filepath.Join(scpHome, catalogPath)
	}
	catalogs, err := catalog.Load(catalogPath)
	if err != nil {
		logger.Fatal("Failed to load the permission language catalogs", log.Error(err))
	}
	projector := permissionService.NewReloadableProjector(catalogs)

	timeout := time.Duration(scpConfig.ConsentBackend.TimeoutSeconds) * time.Second
	httpClient, err := client.NewOutboundHTTPClient(scpHome, scpConfig.TLS, timeout)
	if err != nil {
		logger.Fatal("Failed to create the outbound HTTP client", log.Error(err))
	}

	if err := provider.Initialize(config.GetRuntime(), projector, httpClient); err != nil {
		logger.Fatal("Failed to initialize the consent service", log.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if catalogPath != "" && scpConfig.Portal.CatalogReloadSeconds > 0 {
		loadedAt := time.Time{}
		if info, err := os.Stat(catalogPath); err == nil {
			loadedAt = info.ModTime()
		}
		go schedulers.StartCatalogReloadScheduler(ctx, catalogPath, loadedAt,
			time.Duration(scpConfig.Portal.CatalogReloadSeconds)*time.Second, projector.Replace)
	}

	serverAddr := fmt.Sprintf("%s:%d", scpConfig.Addr.Host, scpConfig.Addr.Port)
	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener", log.String("address", serverAddr), log.Error(err))
	}

	server := &http.Server{
		Handler:           initHandler(scpConfig),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown failed", log.Error(err))
		}
	}()

	logger.Info("WSO2 open banking self-care service started", log.String("address", serverAddr))
	if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Failed to serve requests", log.Error(err))
	}
	logger.Info("WSO2 open banking self-care service stopped")
}

// initHandler registers the services and wraps the multiplexer with the request middleware.
func initHandler(cfg *config.Config) http.Handler {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux, nil)

	// Register the services.
	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		log.GetLogger().Fatal("Failed to register the services", log.Error(err))
	}

	return systemContext.TraceMiddleware(utils.CORS(cfg.Auth.CORSAllowedOrigins, metrics.WithMetrics(mux)))
}

func getSCPHome() string {

	// Parse project directory from command line arguments.
	projectHome := ""
	projectHomeFlag := flag.String("scpHome", "", "Path to self-care service home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		projectHome = *projectHomeFlag
	} else {
		// If no command line argument is provided, use the current working directory.
		dir, dirErr := os.Getwd()
		if dirErr != nil {
			fatal("Failed to get current working directory", dirErr)
		}
		projectHome = dir
	}

	return projectHome
}

// fatal reports startup failures that happen before the logger is configured.
func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
