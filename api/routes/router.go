package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/salonadmin/api/controllers"
	"github.com/angelmondragon/salonadmin/api/middleware"
	"github.com/angelmondragon/salonadmin/internal/bookings"
	"github.com/angelmondragon/salonadmin/internal/campaigns"
	"github.com/angelmondragon/salonadmin/internal/customers"
	"github.com/angelmondragon/salonadmin/internal/employees"
	"github.com/angelmondragon/salonadmin/internal/places"
	"github.com/angelmondragon/salonadmin/pkg/config"
	"github.com/angelmondragon/salonadmin/pkg/enums"
	"github.com/angelmondragon/salonadmin/pkg/logger"
	"github.com/angelmondragon/salonadmin/pkg/metrics"
	pkgredis "github.com/angelmondragon/salonadmin/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	readiness map[string]controllers.Pinger,
	idempotencyStore pkgredis.IdempotencyStore,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
	loc *time.Location,
	placeService places.Service,
	customerService customers.Service,
	employeeService employees.Service,
	bookingService bookings.Service,
	campaignService campaigns.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readiness))
	})

	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.Idempotency(idempotencyStore, logg))

		r.Route("/places", func(r chi.Router) {
			r.Get("/", controllers.PlacesList(placeService, logg))
			r.Post("/", controllers.PlaceCreate(placeService, logg))

			r.Route("/{placeId}", func(r chi.Router) {
				r.Use(middleware.RequirePlace(logg))
				r.Put("/", controllers.PlaceUpdate(placeService, logg))
				r.Get("/customers", controllers.PlaceCustomers(customerService, logg))
				r.Get("/employees", controllers.PlaceEmployees(employeeService, logg))
				r.Get("/calendar", controllers.PlaceCalendar(bookingService, loc, logg))
				r.Get("/campaign-drafts", controllers.CampaignDraftList(campaignService, logg))
				r.Post("/campaign-drafts", controllers.CampaignDraftStart(campaignService, logg))
			})
		})

		r.Route("/bookings/{bookingId}", func(r chi.Router) {
			r.Post("/move", controllers.BookingMove(bookingService, logg))
			r.Post("/resize", controllers.BookingResize(bookingService, logg))
			r.Post("/accept", controllers.BookingAction(bookingService, enums.BookingActionAccept, logg))
			r.Post("/decline", controllers.BookingAction(bookingService, enums.BookingActionDecline, logg))
			r.Post("/cancel", controllers.BookingAction(bookingService, enums.BookingActionCancel, logg))
			r.Put("/status", controllers.BookingSetStatus(bookingService, logg))
		})

		r.Route("/campaign-drafts/{draftId}", func(r chi.Router) {
			r.Get("/", controllers.CampaignDraftGet(campaignService, logg))
			r.Delete("/", controllers.CampaignDraftDelete(campaignService, logg))
			r.Put("/step", controllers.CampaignDraftSave(campaignService, logg))
			r.Post("/next", controllers.CampaignDraftNext(campaignService, logg))
			r.Post("/back", controllers.CampaignDraftBack(campaignService, logg))
			r.Post("/submit", controllers.CampaignDraftSubmit(campaignService, logg))
		})
	})

	return r
}
