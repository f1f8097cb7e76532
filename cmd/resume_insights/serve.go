package main

import (
	"os"

	"github.com/jonathan/resume-insights/internal/fetch"
	"github.com/jonathan/resume-insights/internal/server"
	"github.com/jonathan/resume-insights/internal/server/ratelimit"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing resume analysis, job matching and the advisory endpoints
under /api. Port, CORS origin and rate limits come from config, env (PORT, FRONTEND_URL,
RATE_LIMIT_*) or --port.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 5000)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	port := a.cfg.Port
	if cmd.Flags().Changed("port") && servePort > 0 {
		port = servePort
	}

	limits := ratelimit.NewConfig(a.cfg.RateLimited(), a.cfg.RateLimitRequests, a.cfg.RateWindow())
	limits.Whitelist = ratelimit.ParseIPList(os.Getenv("RATE_LIMIT_WHITELIST"))
	limits.Blacklist = ratelimit.ParseIPList(os.Getenv("RATE_LIMIT_BLACKLIST"))

	opts := fetch.DefaultOptions()
	opts.Timeout = a.cfg.FetchTimeoutDuration()

	srv := server.New(server.Config{
		Port:                   port,
		CORSOrigin:             a.cfg.CORSOrigin,
		DefaultRole:            a.cfg.Role,
		DefaultExperienceLevel: a.cfg.ExperienceLevel,
		RateLimit:              limits,
	}, a.service, fetch.NewCachedFetcher(opts, fetch.DefaultCacheTTL))

	return srv.Start()
}
