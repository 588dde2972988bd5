package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	h "idn-area/internal/http/handlers"
	"idn-area/internal/http/middleware"
	"idn-area/internal/metrics"
)

// Options carries what the router needs beyond the handlers.
type Options struct {
	Logger      *slog.Logger
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer
	CORSOrigins []string
}

// readMethods are the methods every route answers; HEAD runs the GET
// handler and the server drops the body.
var readMethods = []string{http.MethodGet, http.MethodHead}

func NewRouter(handler *h.Handler, opts Options) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(log), gin.Recovery(), middleware.CORS(opts.CORSOrigins))
	if opts.Metrics != nil {
		r.Use(middleware.Metrics(opts.Metrics))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warn("failed to set trusted proxies", "error", err)
	}

	r.NoRoute(h.NotFound)

	r.Match(readMethods, "/health", h.Health)
	if opts.Gatherer != nil {
		r.Match(readMethods, "/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	provinces := r.Group("/provinces")
	provinces.Match(readMethods, "", handler.ListProvinces)
	provinces.Match(readMethods, "/:code", handler.GetProvince)
	provinces.Match(readMethods, "/:code/regencies", handler.ListProvinceRegencies)

	regencies := r.Group("/regencies")
	regencies.Match(readMethods, "", handler.ListRegencies)
	regencies.Match(readMethods, "/:code", handler.GetRegency)
	regencies.Match(readMethods, "/:code/districts", handler.ListRegencyDistricts)
	regencies.Match(readMethods, "/:code/islands", handler.ListRegencyIslands)

	districts := r.Group("/districts")
	districts.Match(readMethods, "", handler.ListDistricts)
	districts.Match(readMethods, "/:code", handler.GetDistrict)
	districts.Match(readMethods, "/:code/villages", handler.ListDistrictVillages)

	villages := r.Group("/villages")
	villages.Match(readMethods, "", handler.ListVillages)
	villages.Match(readMethods, "/:code", handler.GetVillage)

	islands := r.Group("/islands")
	islands.Match(readMethods, "", handler.ListIslands)
	islands.Match(readMethods, "/:code", handler.GetIsland)

	return r
}
