// README: Entry point; loads config, wires services, starts the HTTP server
// and background feeds (GPS poller, telemetry simulator, weather refresh).
package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cardash/internal/config"
	"cardash/internal/geocode"
	httptransport "cardash/internal/http"
	"cardash/internal/infra"
	"cardash/internal/modules/location"
	"cardash/internal/modules/nav"
	"cardash/internal/modules/places"
	"cardash/internal/modules/vehicle"
	"cardash/internal/routing"
	"cardash/internal/surface"
	"cardash/internal/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	geocodeCache := geocode.NewCache(redisClient, time.Duration(cfg.Geocode.CacheTTLSeconds)*time.Second)
	geocoder := geocode.NewClient(cfg.Geocode, geocodeCache)

	router := newRouter(cfg.Routing)

	weatherClient := weather.NewClient(cfg.Weather, redisClient)

	hub := surface.NewHub()
	go hub.Run(ctx)

	fullSurface := surface.NewWSSurface(surface.KindFull, hub)
	overviewSurface := surface.NewWSSurface(surface.KindOverview, hub)
	renderer := nav.NewRenderer(fullSurface, overviewSurface)

	adapter := location.NewAdapter(cfg.Location, geocoder)
	if cfg.Location.SourceURL != "" {
		src := location.NewHTTPSource(cfg.Location.SourceURL)
		go adapter.RunPoller(ctx, src, time.Duration(cfg.Location.PollSeconds)*time.Second)
	}

	recentStore := places.NewRecentStore(redisClient)
	favoriteStore := places.NewStore(dbPool)

	session := nav.NewSession(geocoder, router, adapter, renderer).
		WithRecents(recentStore).
		WithNotifier(notifier(hub))

	// A pane attaching mid-trip needs the current route painted onto it.
	hub.OnAttach = func(channel string) {
		if channel == fullSurface.Channel() || channel == overviewSurface.Channel() {
			session.Rerender()
		}
	}

	simulator := vehicle.NewSimulator(hub)
	go simulator.Run(ctx)

	weatherKick := make(chan struct{}, 1)
	adapter.OnUpdate(func(location.State) {
		select {
		case weatherKick <- struct{}{}:
		default:
		}
	})
	go refreshWeather(ctx, weatherClient, adapter, cfg.Weather, weatherKick)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Session:   session,
		Location:  adapter,
		Weather:   weatherClient,
		Favorites: favoriteStore,
		Recents:   recentStore,
		Hub:       hub,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("cardash API listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

func newRouter(cfg config.RoutingConfig) routing.Router {
	if cfg.Provider == "google" && cfg.GoogleAPIKey != "" {
		r, err := routing.NewGoogleRouter(cfg.GoogleAPIKey)
		if err != nil {
			log.Fatalf("google router init: %v", err)
		}
		return r
	}
	return routing.NewOSRMRouter(cfg)
}

// notifier broadcasts user-facing messages to attached notification panes.
func notifier(hub *surface.Hub) nav.Notifier {
	return func(message string) {
		data, err := json.Marshal(map[string]string{"message": message})
		if err != nil {
			return
		}
		hub.Broadcast(httptransport.NotificationChannel, data)
	}
}

// refreshWeather keeps the cached report warm, re-fetching on a timer and
// whenever the vehicle actually moves, and feeds the reported timezone back
// into the location state for the clock widget.
func refreshWeather(ctx context.Context, client *weather.Client, adapter *location.Adapter, cfg config.WeatherConfig, kick <-chan struct{}) {
	refresh := func() {
		report, err := client.Current(ctx, adapter.Current())
		if err != nil {
			log.Printf("weather refresh: %v", err)
			return
		}
		adapter.SetTimezone(report.Timezone)
	}

	refresh()
	interval := time.Duration(cfg.RefreshMinutes) * time.Minute
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refresh()
		case <-kick:
			refresh()
		}
	}
}
